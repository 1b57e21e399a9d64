package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/rezkam/ramadan/tools/linters/clockfree"
)

func main() {
	singlechecker.Main(clockfree.Analyzer)
}
