package calendar

import (
	"fmt"
	"io"
	"slices"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"github.com/rezkam/ramadan/internal/domain"
)

// Entry is one known observance window in a Table.
type Entry struct {
	Year  int
	Start civil.Date
	End   civil.Date
}

// Table is an immutable lookup of known windows by year plus a designated
// fallback year used when a year has no entry.
// The zero Table is empty and every lookup against it fails with ErrConfiguration.
type Table struct {
	windows  map[int]Window
	fallback int
}

// NewTable validates entries and builds a Table.
// A fallbackYear of 0 designates the earliest entry.
func NewTable(entries []Entry, fallbackYear int) (Table, error) {
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("%w: window table is empty", domain.ErrConfiguration)
	}

	windows := make(map[int]Window, len(entries))
	for _, e := range entries {
		if _, dup := windows[e.Year]; dup {
			return Table{}, fmt.Errorf("%w: duplicate window for year %d", domain.ErrConfiguration, e.Year)
		}
		w, err := NewWindow(e.Year, e.Start, e.End)
		if err != nil {
			return Table{}, fmt.Errorf("year %d: %w", e.Year, err)
		}
		windows[e.Year] = w
	}

	if fallbackYear == 0 {
		fallbackYear = slices.Min(yearsOf(windows))
	}
	if _, ok := windows[fallbackYear]; !ok {
		return Table{}, fmt.Errorf("%w: fallback year %d has no window", domain.ErrConfiguration, fallbackYear)
	}

	return Table{windows: windows, fallback: fallbackYear}, nil
}

// DefaultFallbackYear is the fallback of the built-in table.
const DefaultFallbackYear = 2026

// DefaultEntries returns the built-in windows for 2026-2030.
func DefaultEntries() []Entry {
	return []Entry{
		{Year: 2026, Start: civil.Date{Year: 2026, Month: 2, Day: 18}, End: civil.Date{Year: 2026, Month: 3, Day: 19}},
		{Year: 2027, Start: civil.Date{Year: 2027, Month: 2, Day: 8}, End: civil.Date{Year: 2027, Month: 3, Day: 9}},
		{Year: 2028, Start: civil.Date{Year: 2028, Month: 1, Day: 28}, End: civil.Date{Year: 2028, Month: 2, Day: 26}},
		{Year: 2029, Start: civil.Date{Year: 2029, Month: 1, Day: 16}, End: civil.Date{Year: 2029, Month: 2, Day: 14}},
		{Year: 2030, Start: civil.Date{Year: 2030, Month: 1, Day: 6}, End: civil.Date{Year: 2030, Month: 2, Day: 4}},
	}
}

// DefaultTable returns the built-in windows with DefaultFallbackYear as fallback.
func DefaultTable() Table {
	t, err := NewTable(DefaultEntries(), DefaultFallbackYear)
	if err != nil {
		panic(fmt.Sprintf("calendar: invalid built-in table: %v", err))
	}
	return t
}

// Lookup returns the window defined for year.
func (t Table) Lookup(year int) (Window, bool) {
	w, ok := t.windows[year]
	return w, ok
}

// Fallback returns the designated fallback window.
func (t Table) Fallback() (Window, bool) {
	return t.Lookup(t.fallback)
}

// Empty reports whether the table has no windows.
func (t Table) Empty() bool {
	return len(t.windows) == 0
}

// Years returns the years with a window, ascending.
func (t Table) Years() []int {
	years := yearsOf(t.windows)
	slices.Sort(years)
	return years
}

func yearsOf(windows map[int]Window) []int {
	years := make([]int, 0, len(windows))
	for y := range windows {
		years = append(years, y)
	}
	return years
}

// tableFile is the YAML layout of a windows file.
type tableFile struct {
	FallbackYear int `yaml:"fallback_year"`
	Windows      []struct {
		Year  int    `yaml:"year"`
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"windows"`
}

// LoadTable reads a windows table from YAML:
//
//	fallback_year: 2026
//	windows:
//	  - year: 2026
//	    start: "2026-02-18"
//	    end: "2026-03-19"
//
// fallbackYear applies when the file sets no fallback_year; 0 means the earliest entry.
func LoadTable(r io.Reader, fallbackYear int) (Table, error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return Table{}, fmt.Errorf("%w: window table is empty", domain.ErrConfiguration)
		}
		return Table{}, fmt.Errorf("%w: decode windows file: %v", domain.ErrConfiguration, err)
	}

	entries := make([]Entry, 0, len(file.Windows))
	for _, w := range file.Windows {
		start, err := civil.ParseDate(w.Start)
		if err != nil {
			return Table{}, fmt.Errorf("%w: year %d start %q: %v", domain.ErrConfiguration, w.Year, w.Start, err)
		}
		end, err := civil.ParseDate(w.End)
		if err != nil {
			return Table{}, fmt.Errorf("%w: year %d end %q: %v", domain.ErrConfiguration, w.Year, w.End, err)
		}
		entries = append(entries, Entry{Year: w.Year, Start: start, End: end})
	}

	if file.FallbackYear != 0 {
		fallbackYear = file.FallbackYear
	}

	return NewTable(entries, fallbackYear)
}
