// Package clockfree provides a linter that reports reads of the wall clock.
//
// Calendar, quota and progress code takes the current moment as an argument
// so that one request sees one "now". Any call to time.Now or time.Since in
// those packages is reported. Suppress a single line with //nolint:clockfree.
package clockfree

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer is the clockfree analyzer.
var Analyzer = &analysis.Analyzer{
	Name: "clockfree",
	Doc:  "reports time.Now, time.Since and time.Until calls in packages that must receive the current time as input",
	Run:  run,
}

// clockFuncs are the functions of package time that read the wall clock.
var clockFuncs = map[string]bool{
	"Now":   true,
	"Since": true,
	"Until": true,
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		nolint := nolintLines(pass, file)

		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			name, ok := clockCall(pass, call)
			if !ok {
				return true
			}

			line := pass.Fset.Position(call.Pos()).Line
			if nolint[line] || nolint[line-1] {
				return true
			}

			pass.Reportf(call.Pos(), "time.%s reads the wall clock; take the current time as a parameter", name)
			return true
		})
	}

	return nil, nil
}

// clockCall reports whether call is a call to a clock-reading function of
// package time, resolving the package through type information so renamed
// imports are caught.
func clockCall(pass *analysis.Pass, call *ast.CallExpr) (string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || !clockFuncs[sel.Sel.Name] {
		return "", false
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "time" {
		return "", false
	}

	return sel.Sel.Name, true
}

// nolintLines returns the lines carrying a //nolint or //nolint:clockfree comment.
func nolintLines(pass *analysis.Pass, file *ast.File) map[int]bool {
	lines := make(map[int]bool)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
			if !strings.HasPrefix(text, "nolint") {
				continue
			}

			directive, _, _ := strings.Cut(text, " ")
			linters, specific := strings.CutPrefix(directive, "nolint:")
			if specific && !strings.Contains(","+linters+",", ",clockfree,") {
				continue
			}

			lines[pass.Fset.Position(c.Pos()).Line] = true
		}
	}

	return lines
}
