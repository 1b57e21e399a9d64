package domain

// Slot is one of the five daily prayer times a reading quota is spread across.
// Value object - immutable string enum.
type Slot string

const (
	SlotFajr    Slot = "fajr"
	SlotDhuhr   Slot = "dhuhr"
	SlotAsr     Slot = "asr"
	SlotMaghrib Slot = "maghrib"
	SlotIsha    Slot = "isha"
)

// Slots lists every slot in day order. Quota distribution depends on this order:
// the last entry absorbs the rounding remainder.
var Slots = [5]Slot{SlotFajr, SlotDhuhr, SlotAsr, SlotMaghrib, SlotIsha}

var slotLabels = map[Slot]string{
	SlotFajr:    "Fajr",
	SlotDhuhr:   "Dhuhr",
	SlotAsr:     "Asr",
	SlotMaghrib: "Maghrib",
	SlotIsha:    "Isha",
}

// Label returns the display name of the slot.
func (s Slot) Label() string {
	return slotLabels[s]
}

// GoalType classifies a Quran reading goal by how many completions it targets.
// Value object - immutable string enum.
type GoalType string

const (
	GoalTypeOnce   GoalType = "1x"
	GoalTypeTwice  GoalType = "2x"
	GoalTypeThrice GoalType = "3x"
	GoalTypeCustom GoalType = "custom"
)

// BadgeCategory groups badges by the activity that earns them.
// Value object - immutable string enum.
type BadgeCategory string

const (
	BadgeCategoryQuran     BadgeCategory = "quran"
	BadgeCategoryChallenge BadgeCategory = "challenge"
	BadgeCategoryStreak    BadgeCategory = "streak"
	BadgeCategoryCommunity BadgeCategory = "community"
	BadgeCategorySpecial   BadgeCategory = "special"
)

const (
	// QuranPages is the page count of a standard Madani mushaf.
	QuranPages = 604

	// MaxGoalPages caps the total pages a single goal may target.
	MaxGoalPages = 10000

	// MaxNotesLength is the longest reading-log note accepted.
	MaxNotesLength = 500
)

// Mood is how a user felt when writing a reflection.
// Value object - immutable string enum. The empty Mood means none was chosen.
type Mood string

const (
	MoodGrateful   Mood = "grateful"
	MoodPeaceful   Mood = "peaceful"
	MoodHopeful    Mood = "hopeful"
	MoodDetermined Mood = "determined"
	MoodStruggling Mood = "struggling"
	MoodReflective Mood = "reflective"
)

// PostType is the kind of community feed post.
// Value object - immutable string enum.
type PostType string

const (
	PostTypeProgress      PostType = "progress"
	PostTypeEncouragement PostType = "encouragement"
	PostTypeKindness      PostType = "kindness"
)

// Language is a supported interface language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// PeerStatus is where a peer invitation stands.
type PeerStatus string

const (
	PeerStatusPending  PeerStatus = "pending"
	PeerStatusAccepted PeerStatus = "accepted"
	PeerStatusDeclined PeerStatus = "declined"
)

// Text limits, counted in characters after trimming.
const (
	MaxReflectionLength = 5000
	MaxPostLength       = 1000

	MinNameLength        = 2
	MaxDisplayNameLength = 50
	MaxFullNameLength    = 100
	MaxBioLength         = 200
)
