package calendar

import (
	"cloud.google.com/go/civil"

	"github.com/rezkam/ramadan/internal/ptr"
)

const (
	daysPerWeek = 7

	// MaxWeek is the last week number reported. Days past day 28 stay in week 4.
	MaxWeek = 4
)

// Status describes where a date falls relative to a Window.
//
// Exactly one state applies: active, before start or ended.
// The optional counters are nil outside the state they belong to.
type Status struct {
	CurrentDay     *int // 1-based day of the window, only while active
	DaysRemaining  *int // Days left after today, only while active
	DaysUntilStart *int // Only before the window starts
	IsActive       bool
	HasEnded       bool
	WeekNumber     int // Always in [1, MaxWeek]
}

// BeforeStart reports whether the window has not started yet.
func (s Status) BeforeStart() bool {
	return !s.IsActive && !s.HasEnded
}

// StatusAt computes the Status of w on the given date.
func StatusAt(w Window, today civil.Date) Status {
	s := Status{
		IsActive: w.Contains(today),
		HasEnded: today.After(w.End),
	}

	switch {
	case s.IsActive:
		day := DaysBetween(w.Start, today) + 1
		s.CurrentDay = ptr.To(day)
		s.DaysRemaining = ptr.To(w.TotalDays - day)
		s.WeekNumber = WeekOfDay(day)
	case s.HasEnded:
		s.WeekNumber = MaxWeek
	default:
		s.DaysUntilStart = ptr.To(DaysBetween(today, w.Start))
		s.WeekNumber = 1
	}

	return s
}

// WeekOfDay returns the week number for a 1-based day, clamped to [1, MaxWeek].
func WeekOfDay(day int) int {
	week := (day + daysPerWeek - 1) / daysPerWeek
	return min(max(week, 1), MaxWeek)
}
