package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NewSlot validates and creates a Slot.
func NewSlot(s string) (Slot, error) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))

	switch slot {
	case SlotFajr, SlotDhuhr, SlotAsr, SlotMaghrib, SlotIsha:
		return slot, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSlot, s)
	}
}

// NewGoalType validates and creates a GoalType.
func NewGoalType(s string) (GoalType, error) {
	goalType := GoalType(strings.ToLower(strings.TrimSpace(s)))

	switch goalType {
	case GoalTypeOnce, GoalTypeTwice, GoalTypeThrice, GoalTypeCustom:
		return goalType, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidGoalType, s)
	}
}

// GoalTypeForMultiplier maps a khatm count to its goal type.
// One to three completions have their own type, anything above is custom.
func GoalTypeForMultiplier(times int) (GoalType, error) {
	switch {
	case times < 1:
		return "", fmt.Errorf("%w: got %d", ErrInvalidMultiplier, times)
	case times == 1:
		return GoalTypeOnce, nil
	case times == 2:
		return GoalTypeTwice, nil
	case times == 3:
		return GoalTypeThrice, nil
	default:
		return GoalTypeCustom, nil
	}
}

// TotalPagesFor returns the page total for reading the Quran the given number of times.
func TotalPagesFor(times int) (int, error) {
	if times < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMultiplier, times)
	}

	pages := times * QuranPages
	if pages > MaxGoalPages {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrTotalPagesOutOfRange, pages, MaxGoalPages)
	}

	return pages, nil
}

// NewBadgeCategory validates and creates a BadgeCategory.
func NewBadgeCategory(s string) (BadgeCategory, error) {
	category := BadgeCategory(strings.ToLower(strings.TrimSpace(s)))

	switch category {
	case BadgeCategoryQuran, BadgeCategoryChallenge, BadgeCategoryStreak,
		BadgeCategoryCommunity, BadgeCategorySpecial:
		return category, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidBadgeCategory, s)
	}
}

// Notes is a validated free-text note attached to a reading log (0-500 characters).
type Notes struct {
	value string
}

// NewNotes creates Notes, trimming surrounding whitespace.
func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)

	if utf8.RuneCountInString(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}

	return Notes{value: s}, nil
}

// String returns the note text.
func (n Notes) String() string {
	return n.value
}

// NewMood validates and creates a Mood. An empty string means no mood.
func NewMood(s string) (Mood, error) {
	mood := Mood(strings.ToLower(strings.TrimSpace(s)))

	switch mood {
	case "", MoodGrateful, MoodPeaceful, MoodHopeful, MoodDetermined, MoodStruggling, MoodReflective:
		return mood, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMood, s)
	}
}

// NewPostType validates and creates a PostType.
func NewPostType(s string) (PostType, error) {
	postType := PostType(strings.ToLower(strings.TrimSpace(s)))

	switch postType {
	case PostTypeProgress, PostTypeEncouragement, PostTypeKindness:
		return postType, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPostType, s)
	}
}

// NewLanguage validates and creates a Language.
func NewLanguage(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))

	switch lang {
	case LanguageEnglish, LanguageArabic:
		return lang, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLanguage, s)
	}
}

// NewPeerStatus validates and creates a PeerStatus.
func NewPeerStatus(s string) (PeerStatus, error) {
	status := PeerStatus(strings.ToLower(strings.TrimSpace(s)))

	switch status {
	case PeerStatusPending, PeerStatusAccepted, PeerStatusDeclined:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPeerStatus, s)
	}
}

// boundedText trims s and reports whether its length lies in [minLen, maxLen].
func boundedText(s string, minLen, maxLen int) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n >= minLen && n <= maxLen
}

// content validates required post or journal text of at most maxLen characters.
func content(s string, maxLen int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrContentRequired
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", fmt.Errorf("%w: more than %d characters", ErrContentTooLong, maxLen)
	}
	return s, nil
}

func requireUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrUserIDRequired
	}
	return userID, nil
}
