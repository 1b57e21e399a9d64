package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/ramadan/internal/calendar"
	"github.com/rezkam/ramadan/internal/domain"
)

func newTestService(t *testing.T, opts ...calendar.Option) *Service {
	t.Helper()
	engine, err := calendar.NewEngine(calendar.DefaultTable(), opts...)
	require.NoError(t, err)
	return NewService(engine)
}

// captureLogs routes the default logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "Blessed night"},
		{4, "Blessed night"},
		{5, "Assalamu alaikum"},
		{11, "Assalamu alaikum"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{19, "Good evening"},
		{20, "Blessed night"},
		{23, "Blessed night"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Greeting(tc.hour), "hour %d", tc.hour)
	}
}

func TestService_NewGoal(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	goal, err := svc.NewGoal(context.Background(), "  user-1 ", 1, now)
	require.NoError(t, err)

	_, err = uuid.Parse(goal.ID)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", goal.UserID)
	assert.Equal(t, domain.GoalTypeOnce, goal.Type)
	assert.Equal(t, 2026, goal.Year)
	assert.True(t, goal.Active)
	assert.Equal(t, now, goal.CreatedAt)

	assert.Equal(t, 604, goal.Quota.TotalPages)
	assert.Equal(t, 30, goal.Quota.WindowDays)
	assert.Equal(t, 21, goal.Quota.DailyTarget)
	assert.Equal(t, map[domain.Slot]int{
		domain.SlotFajr:    6,
		domain.SlotDhuhr:   3,
		domain.SlotAsr:     3,
		domain.SlotMaghrib: 2,
		domain.SlotIsha:    7,
	}, goal.Quota.Distribution)
}

func TestService_NewGoal_AfterWindowTargetsNextYear(t *testing.T) {
	svc := newTestService(t)

	goal, err := svc.NewGoal(context.Background(), "user-1", 2, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2027, goal.Year)
	assert.Equal(t, domain.GoalTypeTwice, goal.Type)
	assert.Equal(t, 1208, goal.Quota.TotalPages)
	assert.Equal(t, 41, goal.Quota.DailyTarget) // ceil(1208 / 30)
}

func TestService_NewGoal_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		userID     string
		multiplier int
		wantErr    error
	}{
		{"missing user", " ", 1, domain.ErrUserIDRequired},
		{"zero multiplier", "u", 0, domain.ErrInvalidMultiplier},
		{"too many pages", "u", 17, domain.ErrTotalPagesOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.NewGoal(ctx, tc.userID, tc.multiplier, now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}

	t.Run("custom multiplier at the page cap", func(t *testing.T) {
		goal, err := svc.NewGoal(ctx, "u", 16, now)
		require.NoError(t, err)
		assert.Equal(t, domain.GoalTypeCustom, goal.Type)
		assert.Equal(t, 9664, goal.Quota.TotalPages)
		assert.Equal(t, 323, goal.Quota.DailyTarget)
	})
}

func TestService_Today(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	goal, err := svc.NewGoal(ctx, "user-1", 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	logs := []domain.ReadingLog{
		{Date: civil.Date{Year: 2026, Month: 2, Day: 18}, PagesRead: 10},
		{Date: civil.Date{Year: 2026, Month: 2, Day: 19}, PagesRead: 20},
	}

	today, err := svc.Today(ctx, time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC), goal, logs)
	require.NoError(t, err)

	assert.Equal(t, civil.Date{Year: 2026, Month: 2, Day: 20}, today.Today)
	assert.True(t, today.Status.IsActive)
	require.NotNil(t, today.Status.CurrentDay)
	assert.Equal(t, 3, *today.Status.CurrentDay)
	assert.Equal(t, 3, today.ChallengeDay)
	assert.Equal(t, "Discipline & Renewal", today.Week.Title)
	assert.Equal(t, "Assalamu alaikum", today.Greeting)

	assert.Equal(t, 30, today.Stats.TotalPagesRead)
	assert.Equal(t, 2, today.Stats.CurrentStreak)
	assert.Equal(t, 5, today.ProgressPercent) // 30 of 604

	require.NotNil(t, today.Quota)
	assert.Equal(t, 21, today.Quota.DailyTarget)
}

func TestService_Today_WithoutGoal(t *testing.T) {
	svc := newTestService(t)

	today, err := svc.Today(context.Background(), time.Date(2026, 1, 10, 21, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	assert.Nil(t, today.Quota)
	assert.Zero(t, today.ProgressPercent)
	assert.True(t, today.Status.BeforeStart())
	require.NotNil(t, today.Status.DaysUntilStart)
	assert.Equal(t, 39, *today.Status.DaysUntilStart)
	assert.Equal(t, 1, today.ChallengeDay)
	assert.Equal(t, "Blessed night", today.Greeting)
}

func TestService_Today_InactiveGoalHasNoQuota(t *testing.T) {
	svc := newTestService(t)
	goal := &domain.Goal{Active: false, Quota: domain.GoalQuota{TotalPages: 604}}

	today, err := svc.Today(context.Background(), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), goal, nil)
	require.NoError(t, err)
	assert.Nil(t, today.Quota)
}

func TestService_Today_UsesEngineLocation(t *testing.T) {
	svc := newTestService(t, calendar.WithLocation(time.FixedZone("AST", 3*60*60)))

	// 22:00 UTC on the 17th is 01:00 on the 18th at UTC+3
	today, err := svc.Today(context.Background(), time.Date(2026, 2, 17, 22, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	assert.True(t, today.Status.IsActive)
	assert.Equal(t, 1, today.ChallengeDay)
	assert.Equal(t, "Blessed night", today.Greeting)
}

func TestService_FallbackIsLogged(t *testing.T) {
	logs := captureLogs(t)
	svc := newTestService(t)

	today, err := svc.Today(context.Background(), time.Date(2035, 6, 1, 12, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	assert.True(t, today.FallbackUsed)
	assert.Equal(t, 2035, today.Window.Year)
	assert.True(t, today.Status.HasEnded)
	assert.Equal(t, 4, today.Status.WeekNumber)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(2035), entry["year"])
	assert.Equal(t, "2026-02-18", entry["start"])
}

func TestService_StrictWindowsRejectsUnknownYear(t *testing.T) {
	svc := newTestService(t, calendar.WithStrictWindows(true))

	_, err := svc.NewGoal(context.Background(), "u", 1, time.Date(2035, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownYear))
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestService_Award(t *testing.T) {
	logs := captureLogs(t)
	svc := newTestService(t)

	badges := []domain.Badge{
		{ID: "b1", Slug: "first-juz", Category: domain.BadgeCategoryQuran, Requirement: json.RawMessage(`{"pages_read": 20}`)},
		{ID: "b2", Slug: "broken", Category: domain.BadgeCategoryStreak, Requirement: json.RawMessage(`"7"`)},
	}

	awarded := svc.Award(context.Background(), badges, nil, domain.ReadingStats{TotalPagesRead: 30})

	require.Len(t, awarded, 1)
	assert.Equal(t, "first-juz", awarded[0].Slug)
	assert.Contains(t, logs.String(), "skipping badge")
	assert.Contains(t, logs.String(), "broken")
}

func TestService_Reflect(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("during the window", func(t *testing.T) {
		now := time.Date(2026, 3, 6, 21, 0, 0, 0, time.UTC) // day 17, week 3
		r, err := svc.Reflect(ctx, "user-1", "  Helped at the iftar kitchen.  ", "Grateful", true, now)
		require.NoError(t, err)

		_, err = uuid.Parse(r.ID)
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 2026, Month: 3, Day: 6}, r.Date)
		assert.Equal(t, 2026, r.Year)
		assert.Contains(t, r.Prompt, "serve someone")
		assert.Equal(t, "Helped at the iftar kitchen.", r.Content)
		assert.Equal(t, domain.MoodGrateful, r.Mood)
		assert.True(t, r.Private)
	})

	t.Run("before and after the window", func(t *testing.T) {
		before, err := svc.Reflect(ctx, "user-1", "Preparing.", "", false, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Contains(t, before.Prompt, "start fresh")
		assert.Empty(t, before.Mood)

		after, err := svc.Reflect(ctx, "user-1", "Looking back.", "reflective", false, time.Date(2035, 6, 1, 9, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Contains(t, after.Prompt, "most grateful")
	})

	t.Run("date follows the engine location", func(t *testing.T) {
		svc := newTestService(t, calendar.WithLocation(time.FixedZone("UTC+3", 3*60*60)))
		r, err := svc.Reflect(ctx, "user-1", "Late night.", "", true, time.Date(2026, 3, 6, 22, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 2026, Month: 3, Day: 7}, r.Date)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Reflect(ctx, "user-1", "", "", true, time.Now())
		assert.True(t, errors.Is(err, domain.ErrContentRequired))

		_, err = svc.Reflect(ctx, "user-1", "text", "sleepy", true, time.Now())
		assert.True(t, errors.Is(err, domain.ErrInvalidMood))
	})
}

func TestService_Post(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	post, err := svc.Post(context.Background(), "user-1", "kindness", "Shared dates with neighbours.", now)
	require.NoError(t, err)

	_, err = uuid.Parse(post.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PostTypeKindness, post.Type)
	assert.Equal(t, now.UTC(), post.CreatedAt)

	_, err = svc.Post(context.Background(), "user-1", "progress", "", now)
	assert.True(t, errors.Is(err, domain.ErrContentRequired))
}

func TestService_InvitePeer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	invite, err := svc.InvitePeer(ctx, "user-1", "user-2", "Read with me?", time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.PeerStatusPending, invite.Status)
	assert.Equal(t, 2027, invite.Year, "after the window the next year is active")

	_, err = svc.InvitePeer(ctx, "user-1", "user-1", "", time.Now())
	assert.True(t, errors.Is(err, domain.ErrSelfInvite))
}
