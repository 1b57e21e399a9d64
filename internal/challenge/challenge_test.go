package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezkam/ramadan/internal/calendar"
	"github.com/rezkam/ramadan/internal/ptr"
)

func TestWeeks(t *testing.T) {
	weeks := Weeks(30)

	assert.Len(t, weeks, 4)
	assert.Equal(t, "Discipline & Renewal", weeks[0].Title)
	assert.Equal(t, 30, weeks[3].LastDay)

	// Consecutive and gap-free
	for i := 1; i < len(weeks); i++ {
		assert.Equal(t, weeks[i-1].LastDay+1, weeks[i].FirstDay)
	}
}

func TestWeeks_Prompts(t *testing.T) {
	seen := make(map[string]bool)
	for _, week := range Weeks(30) {
		assert.NotEmpty(t, week.Prompt, "week %d", week.Number)
		assert.False(t, seen[week.Prompt], "week %d repeats a prompt", week.Number)
		seen[week.Prompt] = true
	}
	assert.Contains(t, WeekOf(16, 30).Prompt, "serve someone")
}

func TestWeeks_LastWeekCoversWindow(t *testing.T) {
	assert.Equal(t, 30, Weeks(29)[3].LastDay)
	assert.Equal(t, 35, Weeks(35)[3].LastDay)
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		day      int
		expected int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {21, 3}, {22, 4}, {30, 4}, {33, 4},
	}

	for _, tc := range tests {
		week := WeekOf(tc.day, 30)
		assert.Equal(t, tc.expected, week.Number, "day %d", tc.day)
	}
	assert.True(t, WeekOf(15, 30).Contains(15))
	assert.Equal(t, "Community & Service", WeekOf(18, 30).Title)
}

func TestGroup(t *testing.T) {
	grouped := Group([]int{1, 9, 2, 30, 22, 15}, 30)

	assert.Equal(t, []int{1, 2}, grouped[1])
	assert.Equal(t, []int{9}, grouped[2])
	assert.Equal(t, []int{15}, grouped[3])
	assert.Equal(t, []int{30, 22}, grouped[4])
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name       string
		day        int
		currentDay int
		completed  bool
		expected   State
	}{
		{"today", 5, 5, false, StateToday},
		{"future", 6, 5, false, StateUpcoming},
		{"past not done", 4, 5, false, StateOpen},
		{"past done", 4, 5, true, StateCompleted},
		{"today done", 5, 5, true, StateCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StateOf(tc.day, tc.currentDay, tc.completed))
		})
	}
}

func TestTodayDay(t *testing.T) {
	assert.Equal(t, 12, TodayDay(calendar.Status{CurrentDay: ptr.To(12), IsActive: true}))
	assert.Equal(t, 1, TodayDay(calendar.Status{DaysUntilStart: ptr.To(3), WeekNumber: 1}))
	assert.Equal(t, 1, TodayDay(calendar.Status{HasEnded: true, WeekNumber: 4}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 30))
	assert.Equal(t, 33, Percent(10, 30))
	assert.Equal(t, 100, Percent(30, 30))
}
