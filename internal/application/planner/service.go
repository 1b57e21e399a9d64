// Package planner assembles the dashboard view of a reading plan from one
// moment in time: the resolved window and status, the challenge day, reading
// progress against a goal and today's quota. It also creates goals and
// awards badges.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rezkam/ramadan/internal/calendar"
	"github.com/rezkam/ramadan/internal/challenge"
	"github.com/rezkam/ramadan/internal/domain"
	"github.com/rezkam/ramadan/internal/progress"
	"github.com/rezkam/ramadan/internal/quota"
)

// Greeting returns the salutation shown for a local hour of day.
func Greeting(hour int) string {
	switch {
	case hour < 5:
		return "Blessed night"
	case hour < 12:
		return "Assalamu alaikum"
	case hour < 17:
		return "Good afternoon"
	case hour < 20:
		return "Good evening"
	default:
		return "Blessed night"
	}
}

// Today is everything the dashboard shows for one moment.
// All fields derive from the same now.
type Today struct {
	calendar.Resolution

	Greeting     string
	ChallengeDay int
	Week         challenge.Week

	Stats           domain.ReadingStats
	ProgressPercent int

	Quota *domain.GoalQuota // nil without an active goal
}

// Service answers planning questions on top of the calendar engine.
type Service struct {
	engine *calendar.Engine
}

// NewService creates a new planner service.
func NewService(engine *calendar.Engine) *Service {
	return &Service{engine: engine}
}

// Engine returns the calendar engine the service resolves windows with.
func (s *Service) Engine() *calendar.Engine {
	return s.engine
}

// resolve wraps Engine.Resolve and reports fallback windows.
func (s *Service) resolve(ctx context.Context, now time.Time) (calendar.Resolution, error) {
	res, err := s.engine.Resolve(now)
	if err != nil {
		return calendar.Resolution{}, fmt.Errorf("failed to resolve window: %w", err)
	}

	if res.FallbackUsed {
		slog.WarnContext(ctx, "no window configured for year, using fallback",
			slog.Int("year", res.Window.Year),
			slog.String("start", res.Window.Start.String()),
			slog.String("end", res.Window.End.String()),
		)
	}

	return res, nil
}

// Today builds the dashboard facts for now. goal may be nil.
func (s *Service) Today(ctx context.Context, now time.Time, goal *domain.Goal, logs []domain.ReadingLog) (*Today, error) {
	res, err := s.resolve(ctx, now)
	if err != nil {
		return nil, err
	}

	day := challenge.TodayDay(res.Status)
	stats := progress.Summarize(logs, res.Today)

	t := &Today{
		Resolution:   res,
		Greeting:     Greeting(now.In(s.engine.Location()).Hour()),
		ChallengeDay: day,
		Week:         challenge.WeekOf(day, res.Window.TotalDays),
		Stats:        stats,
	}

	if goal != nil && goal.Active {
		q := goal.Quota
		t.Quota = &q
		t.ProgressPercent = progress.Percent(stats.TotalPagesRead, q.TotalPages)
	}

	return t, nil
}

// NewGoal creates a goal to read the Quran multiplier times during the
// window active at now. The quota is fixed at creation.
func (s *Service) NewGoal(ctx context.Context, userID string, multiplier int, now time.Time) (*domain.Goal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	goalType, err := domain.GoalTypeForMultiplier(multiplier)
	if err != nil {
		return nil, err
	}

	totalPages, err := domain.TotalPagesFor(multiplier)
	if err != nil {
		return nil, err
	}

	res, err := s.resolve(ctx, now)
	if err != nil {
		return nil, err
	}

	q, err := quota.NewGoalQuota(totalPages, res.Window.TotalDays)
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		ID:        id,
		UserID:    userID,
		Type:      goalType,
		Year:      res.Window.Year,
		Quota:     q,
		Active:    true,
		CreatedAt: now.UTC(),
	}

	slog.InfoContext(ctx, "goal created",
		slog.String("goal_id", goal.ID),
		slog.String("type", string(goal.Type)),
		slog.Int("year", goal.Year),
		slog.Int("daily_target", q.DailyTarget),
	)

	return goal, nil
}

// Award returns the badges stats newly earn. Badges with an unreadable
// requirement are logged and skipped.
func (s *Service) Award(ctx context.Context, badges []domain.Badge, earned map[string]bool, stats domain.ReadingStats) []domain.Badge {
	awarded, skipped := progress.NewlyEarned(badges, earned, stats)

	for _, err := range skipped {
		slog.WarnContext(ctx, "skipping badge", slog.String("error", err.Error()))
	}

	return awarded
}

// newID returns a time-ordered identifier for a new record.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// Reflect records a journal entry for the local date of now. The entry is
// placed in the window's year and carries the prompt of the current week:
// week 1 before the window opens, week 4 after it closes.
func (s *Service) Reflect(ctx context.Context, userID, text, mood string, private bool, now time.Time) (*domain.Reflection, error) {
	r, err := domain.NewReflection(userID, text, mood, private)
	if err != nil {
		return nil, err
	}

	res, err := s.resolve(ctx, now)
	if err != nil {
		return nil, err
	}

	if r.ID, err = newID(); err != nil {
		return nil, err
	}
	r.Date = res.Today
	r.Year = res.Window.Year
	r.Prompt = challenge.Weeks(res.Window.TotalDays)[res.Status.WeekNumber-1].Prompt
	r.CreatedAt = now.UTC()

	slog.DebugContext(ctx, "reflection recorded",
		slog.String("reflection_id", r.ID),
		slog.String("date", r.Date.String()),
		slog.String("mood", string(r.Mood)),
	)

	return &r, nil
}

// Post creates a community feed post.
func (s *Service) Post(ctx context.Context, userID, postType, text string, now time.Time) (*domain.CommunityPost, error) {
	post, err := domain.NewCommunityPost(userID, postType, text)
	if err != nil {
		return nil, err
	}

	if post.ID, err = newID(); err != nil {
		return nil, err
	}
	post.CreatedAt = now.UTC()

	slog.DebugContext(ctx, "post created",
		slog.String("post_id", post.ID),
		slog.String("type", string(post.Type)),
	)

	return &post, nil
}

// InvitePeer creates a pending invitation from userID to peerID for the
// observance year active at now.
func (s *Service) InvitePeer(ctx context.Context, userID, peerID, message string, now time.Time) (*domain.PeerConnection, error) {
	invite, err := domain.NewPeerConnection(userID, peerID, message)
	if err != nil {
		return nil, err
	}

	res, err := s.resolve(ctx, now)
	if err != nil {
		return nil, err
	}

	if invite.ID, err = newID(); err != nil {
		return nil, err
	}
	invite.Year = res.Window.Year
	invite.CreatedAt = now.UTC()

	slog.InfoContext(ctx, "peer invited",
		slog.String("connection_id", invite.ID),
		slog.Int("year", invite.Year),
	)

	return &invite, nil
}
