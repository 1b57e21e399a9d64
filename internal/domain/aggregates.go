package domain

import (
	"encoding/json"
	"time"

	"cloud.google.com/go/civil"
)

// GoalQuota is the reading plan derived when a goal is created.
//
// It is treated as immutable configuration: a goal keeps the quota it was
// created with even if the observance window is later corrected. Replacing
// the goal is the only way to recompute it.
type GoalQuota struct {
	TotalPages   int
	WindowDays   int
	DailyTarget  int
	Distribution map[Slot]int // Sums exactly to DailyTarget
}

// Goal is an aggregate root representing a user's Quran reading goal for one year.
type Goal struct {
	ID     string
	UserID string
	Type   GoalType
	Year   int // Observance year the goal belongs to

	Quota GoalQuota

	Active    bool
	CreatedAt time.Time
}

// ReadingLog is one day of reading against a goal.
// The record store keeps at most one log per (user, goal, date); a later
// save for the same date replaces the earlier one.
type ReadingLog struct {
	Date           civil.Date
	PagesRead      int
	SlotsCompleted map[Slot]bool
	Notes          Notes
}

// ReadingStats aggregates a user's reading logs.
type ReadingStats struct {
	TotalPagesRead int
	DaysLogged     int
	CurrentStreak  int
	LongestStreak  int
}

// Badge is an achievement a user earns once its requirement is met.
type Badge struct {
	ID       string
	Slug     string
	Title    string
	Category BadgeCategory

	// Requirement is the raw JSON object stored with the badge,
	// e.g. {"pages_read": 604} or {"streak": 7}.
	Requirement json.RawMessage
}
