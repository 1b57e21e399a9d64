package domain

import (
	"errors"
	"fmt"
)

// Domain errors returned by the calendar engine and value constructors.

var (
	// ErrConfiguration indicates no usable observance window definition exists.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument indicates a non-positive day count or other out-of-range input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownYear indicates the table has no window for the requested year
	// and strict resolution is enabled.
	ErrUnknownYear = fmt.Errorf("%w: no window for year", ErrConfiguration)
)

// Validation errors for value objects.
var (
	ErrInvalidSlot          = errors.New("invalid prayer slot")
	ErrInvalidGoalType      = errors.New("invalid goal type")
	ErrInvalidMultiplier    = errors.New("khatm multiplier must be at least 1")
	ErrTotalPagesOutOfRange = errors.New("total pages out of range")
	ErrPagesReadOutOfRange  = errors.New("pages read out of range")
	ErrNotesTooLong         = errors.New("notes too long")
	ErrUserIDRequired       = errors.New("user id is required")
	ErrInvalidBadgeCategory = errors.New("invalid badge category")
	ErrInvalidRequirement   = errors.New("invalid badge requirement")
)

// Validation errors for journaling, the community feed, profiles and peers.
var (
	ErrContentRequired      = errors.New("content is required")
	ErrContentTooLong       = errors.New("content too long")
	ErrInvalidMood          = errors.New("invalid mood")
	ErrInvalidPostType      = errors.New("invalid post type")
	ErrInvalidLanguage      = errors.New("invalid language")
	ErrInvalidTimezone      = errors.New("invalid timezone")
	ErrDisplayNameLength    = errors.New("display name length out of range")
	ErrFullNameLength       = errors.New("full name length out of range")
	ErrBioTooLong           = errors.New("bio too long")
	ErrPeerIDRequired       = errors.New("peer id is required")
	ErrSelfInvite           = errors.New("cannot invite yourself")
	ErrInvalidPeerStatus    = errors.New("invalid peer status")
	ErrInvitationNotPending = errors.New("invitation already answered")
)
