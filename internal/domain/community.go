package domain

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Reflection is a journal entry. A user keeps at most one per date and year;
// saving again for the same date replaces it.
type Reflection struct {
	ID      string
	UserID  string
	Date    civil.Date
	Year    int    // Observance year the entry belongs to
	Prompt  string // Weekly prompt shown when the entry was written
	Content string
	Mood    Mood // Empty when none was chosen
	Private bool

	CreatedAt time.Time
}

// NewReflection validates a journal entry's user-supplied fields.
// Placement on the calendar (ID, Date, Year, Prompt) is left to the caller.
func NewReflection(userID, text, mood string, private bool) (Reflection, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return Reflection{}, err
	}

	text, err = content(text, MaxReflectionLength)
	if err != nil {
		return Reflection{}, err
	}

	m, err := NewMood(mood)
	if err != nil {
		return Reflection{}, err
	}

	return Reflection{UserID: userID, Content: text, Mood: m, Private: private}, nil
}

// CommunityPost is an entry in the shared feed.
type CommunityPost struct {
	ID       string
	UserID   string
	Type     PostType
	Content  string
	Featured bool

	CreatedAt time.Time
}

// NewCommunityPost validates a feed post.
func NewCommunityPost(userID, postType, text string) (CommunityPost, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return CommunityPost{}, err
	}

	pt, err := NewPostType(postType)
	if err != nil {
		return CommunityPost{}, err
	}

	text, err = content(text, MaxPostLength)
	if err != nil {
		return CommunityPost{}, err
	}

	return CommunityPost{UserID: userID, Type: pt, Content: text}, nil
}

// PeerConnection is an invitation from UserID to PeerID to keep each other
// accountable for one observance year.
type PeerConnection struct {
	ID      string
	UserID  string
	PeerID  string
	Status  PeerStatus
	Message string
	Year    int

	CreatedAt time.Time
}

// NewPeerConnection creates a pending invitation. Users cannot invite themselves.
func NewPeerConnection(userID, peerID, message string) (PeerConnection, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return PeerConnection{}, err
	}

	peerID = strings.TrimSpace(peerID)
	if peerID == "" {
		return PeerConnection{}, ErrPeerIDRequired
	}
	if peerID == userID {
		return PeerConnection{}, ErrSelfInvite
	}

	return PeerConnection{
		UserID:  userID,
		PeerID:  peerID,
		Status:  PeerStatusPending,
		Message: strings.TrimSpace(message),
	}, nil
}

// Respond records the peer's answer. Only a pending invitation can be
// answered, and only with accepted or declined.
func (p *PeerConnection) Respond(status PeerStatus) error {
	if status != PeerStatusAccepted && status != PeerStatusDeclined {
		return fmt.Errorf("%w: cannot answer with %q", ErrInvalidPeerStatus, status)
	}
	if p.Status != PeerStatusPending {
		return fmt.Errorf("%w: status is %s", ErrInvitationNotPending, p.Status)
	}

	p.Status = status
	return nil
}

// Profile is a user's public identity and preferences.
type Profile struct {
	DisplayName string
	FullName    string
	Bio         string
	Timezone    string // IANA zone name
	Language    Language
}

// NewProfile validates profile settings. An empty timezone means UTC.
func NewProfile(displayName, fullName, bio, timezone, language string) (Profile, error) {
	displayName, ok := boundedText(displayName, MinNameLength, MaxDisplayNameLength)
	if !ok {
		return Profile{}, fmt.Errorf("%w: want %d-%d characters", ErrDisplayNameLength, MinNameLength, MaxDisplayNameLength)
	}

	fullName, ok = boundedText(fullName, MinNameLength, MaxFullNameLength)
	if !ok {
		return Profile{}, fmt.Errorf("%w: want %d-%d characters", ErrFullNameLength, MinNameLength, MaxFullNameLength)
	}

	bio, ok = boundedText(bio, 0, MaxBioLength)
	if !ok {
		return Profile{}, fmt.Errorf("%w: more than %d characters", ErrBioTooLong, MaxBioLength)
	}

	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return Profile{}, fmt.Errorf("%w: %s", ErrInvalidTimezone, timezone)
	}

	lang, err := NewLanguage(language)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		DisplayName: displayName,
		FullName:    fullName,
		Bio:         bio,
		Timezone:    timezone,
		Language:    lang,
	}, nil
}
