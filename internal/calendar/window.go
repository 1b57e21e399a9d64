package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/rezkam/ramadan/internal/domain"
)

// Window is the inclusive date range observed in one year.
type Window struct {
	Year      int
	Start     civil.Date
	End       civil.Date // Inclusive: the whole final day is part of the window
	TotalDays int
}

// NewWindow creates a Window, validating that start is not after end.
func NewWindow(year int, start, end civil.Date) (Window, error) {
	if !start.IsValid() || !end.IsValid() {
		return Window{}, fmt.Errorf("%w: invalid window dates %s..%s", domain.ErrConfiguration, start, end)
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: window end %s is before start %s", domain.ErrConfiguration, end, start)
	}

	return Window{
		Year:      year,
		Start:     start,
		End:       end,
		TotalDays: DaysBetween(start, end) + 1,
	}, nil
}

// Contains reports whether d falls inside the window, end date included.
func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// DayDate returns the calendar date of the given 1-based day of the window.
func (w Window) DayDate(day int) (civil.Date, error) {
	if day < 1 || day > w.TotalDays {
		return civil.Date{}, fmt.Errorf("%w: day %d outside 1..%d", domain.ErrInvalidArgument, day, w.TotalDays)
	}
	return w.Start.AddDays(day - 1), nil
}

// String returns a compact representation such as "2026 [2026-02-18, 2026-03-19] (30 days)".
func (w Window) String() string {
	return fmt.Sprintf("%d [%s, %s] (%d days)", w.Year, w.Start, w.End, w.TotalDays)
}

// DaysBetween returns the number of whole days from a to b (negative when b is before a).
func DaysBetween(a, b civil.Date) int {
	return b.DaysSince(a)
}

// FormatDay renders a date the way the dashboard shows it, e.g. "Wednesday, February 18".
func FormatDay(d civil.Date) string {
	return d.In(time.UTC).Format("Monday, January 2")
}
