// Package challenge places daily challenges on the observance calendar:
// which themed week a day belongs to and how each day's challenge stands
// relative to today.
package challenge

import (
	"github.com/rezkam/ramadan/internal/calendar"
	"github.com/rezkam/ramadan/internal/progress"
	"github.com/rezkam/ramadan/internal/ptr"
)

// DefaultDays is the challenge count assumed when no window is known.
const DefaultDays = 30

// Week is a themed block of consecutive challenge days.
type Week struct {
	Number   int
	Title    string
	FirstDay int
	LastDay  int

	// Prompt is the journal question asked during the week.
	Prompt string
}

// Contains reports whether day falls inside the week.
func (w Week) Contains(day int) bool {
	return day >= w.FirstDay && day <= w.LastDay
}

// Weeks returns the four themed weeks for a window of totalDays.
// The last week runs to the end of the window, and at least to day DefaultDays.
func Weeks(totalDays int) []Week {
	return []Week{
		{
			Number: 1, Title: "Discipline & Renewal", FirstDay: 1, LastDay: 7,
			Prompt: "What discipline are you building today? How does it feel to start fresh?",
		},
		{
			Number: 2, Title: "Spiritual Depth", FirstDay: 8, LastDay: 14,
			Prompt: "What spiritual insight did you gain today? Describe a moment of connection.",
		},
		{
			Number: 3, Title: "Community & Service", FirstDay: 15, LastDay: 21,
			Prompt: "How did you serve someone today? What did it teach you about yourself?",
		},
		{
			Number: 4, Title: "Gratitude & Growth", FirstDay: 22, LastDay: max(totalDays, DefaultDays),
			Prompt: "What are you most grateful for this Ramadan? What will you carry forward?",
		},
	}
}

// WeekOf returns the themed week containing day, clamped to the first and last week.
func WeekOf(day, totalDays int) Week {
	return Weeks(totalDays)[calendar.WeekOfDay(day)-1]
}

// Group buckets day numbers by themed week, keeping input order within a week.
func Group(days []int, totalDays int) map[int][]int {
	grouped := make(map[int][]int, calendar.MaxWeek)
	for _, day := range days {
		week := WeekOf(day, totalDays)
		grouped[week.Number] = append(grouped[week.Number], day)
	}
	return grouped
}

// State is how a day's challenge stands for a user.
type State string

const (
	StateCompleted State = "completed"
	StateToday     State = "today"
	StateUpcoming  State = "upcoming" // Not yet reachable
	StateOpen      State = "open"     // Past and still completable
)

// StateOf returns the state of the challenge for day given today's window day.
// A completed challenge stays completed regardless of the date.
func StateOf(day, currentDay int, completed bool) State {
	switch {
	case completed:
		return StateCompleted
	case day == currentDay:
		return StateToday
	case day > currentDay:
		return StateUpcoming
	default:
		return StateOpen
	}
}

// TodayDay returns the challenge day to show for a status. Outside the window
// there is no current day and day 1 is shown.
func TodayDay(status calendar.Status) int {
	return ptr.Deref(status.CurrentDay, 1)
}

// Percent returns completed challenges as a rounded percentage of total.
func Percent(completed, total int) int {
	return progress.Percent(completed, total)
}
