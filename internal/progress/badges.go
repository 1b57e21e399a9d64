package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/rezkam/ramadan/internal/domain"
)

// Requirement is the threshold set stored with a badge.
// A nil field has no threshold; a badge qualifies when any present threshold is met.
type Requirement struct {
	PagesRead *int `json:"pages_read,omitempty"`
	Streak    *int `json:"streak,omitempty"`
}

// ParseRequirement decodes a badge requirement. Empty or null input yields
// an empty Requirement, which never qualifies. Each threshold is decoded on
// its own: a field that is not a positive number is treated as absent and
// does not hide the other one. Only input that is not a JSON object is an error.
func ParseRequirement(raw json.RawMessage) (Requirement, error) {
	var req Requirement

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return req, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Requirement{}, fmt.Errorf("%w: %v", domain.ErrInvalidRequirement, err)
	}

	req.PagesRead = threshold(fields["pages_read"])
	req.Streak = threshold(fields["streak"])

	return req, nil
}

// threshold decodes one requirement field. Fractional thresholds round up,
// since the stats they are compared with are whole numbers.
func threshold(raw json.RawMessage) *int {
	if raw == nil {
		return nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || v <= 0 || v > math.MaxInt32 {
		return nil
	}

	n := int(math.Ceil(v))
	return &n
}

// Qualifies reports whether stats meet any threshold of req.
// Zero or negative thresholds count as absent.
func (req Requirement) Qualifies(stats domain.ReadingStats) bool {
	if req.PagesRead != nil && *req.PagesRead > 0 && stats.TotalPagesRead >= *req.PagesRead {
		return true
	}
	if req.Streak != nil && *req.Streak > 0 && stats.CurrentStreak >= *req.Streak {
		return true
	}
	return false
}

// readingCategories are the badge categories decided by reading stats.
var readingCategories = map[domain.BadgeCategory]bool{
	domain.BadgeCategoryQuran:  true,
	domain.BadgeCategoryStreak: true,
}

// NewlyEarned returns the reading badges not yet in earned that stats now qualify for,
// in the order given. Badges whose requirement cannot be parsed are returned in
// skipped so the caller can report them; they never block the others.
func NewlyEarned(badges []domain.Badge, earned map[string]bool, stats domain.ReadingStats) (awarded []domain.Badge, skipped []error) {
	for _, badge := range badges {
		if !readingCategories[badge.Category] || earned[badge.ID] {
			continue
		}

		req, err := ParseRequirement(badge.Requirement)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("badge %s: %w", badge.Slug, err))
			continue
		}

		if req.Qualifies(stats) {
			awarded = append(awarded, badge)
		}
	}

	return awarded, skipped
}
