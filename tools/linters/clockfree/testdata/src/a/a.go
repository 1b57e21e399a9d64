package a

import (
	"time"
	clock "time"
)

func bad() {
	_ = time.Now() // want "time.Now reads the wall clock; take the current time as a parameter"
}

func alsoBadWithUTC() {
	_ = time.Now().UTC() // want "time.Now reads the wall clock; take the current time as a parameter"
}

func elapsed(start time.Time) time.Duration {
	return time.Since(start) // want "time.Since reads the wall clock; take the current time as a parameter"
}

func renamedImport() {
	_ = clock.Now() // want "time.Now reads the wall clock; take the current time as a parameter"
}

func good(now time.Time) time.Time {
	return now.Add(24 * time.Hour)
}

func goodConstruction() time.Time {
	return time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return time.Time{} }

func methodNamedNow(c fakeClock) {
	_ = c.Now()
}

func nolintGeneral() {
	//nolint
	_ = time.Now()
}

func nolintSpecific() {
	_ = time.Now() //nolint:clockfree
}

func nolintList() {
	_ = time.Now() //nolint:errcheck,clockfree
}

func nolintOtherLinter() {
	_ = time.Now() //nolint:otherlinter // want "time.Now reads the wall clock; take the current time as a parameter"
}
