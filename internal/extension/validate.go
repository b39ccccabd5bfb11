package extension

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

const (
	// MaxNameLength is the longest accepted extension name.
	MaxNameLength = 20

	// MaxCustomPerUser caps the number of custom extensions per user.
	// The cap is best effort: the count check and the insert are separate
	// statements, so concurrent adds may overshoot it slightly.
	MaxCustomPerUser = 200
)

// Validation errors. The messages are surfaced to the caller verbatim.
var (
	ErrNameRequired  = errors.New("extension name is required")
	ErrNameTooLong   = errors.New("extension name must be at most 20 characters")
	ErrBadFormat     = errors.New("only lowercase letters, digits and underscore are allowed")
	ErrLimitReached  = errors.New("at most 200 custom extensions are allowed")
	ErrAlreadyExists = errors.New("extension already exists")
)

var nameFormat = regexp.MustCompile(`^[a-z0-9_]+$`)

// Validate checks a canonical (already normalized) extension name against
// the format rules. The first failing rule wins: empty, too long, charset.
func Validate(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	// Length counts characters, not bytes, so multi-byte input within the
	// limit falls through to the charset rule instead.
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !nameFormat.MatchString(name) {
		return ErrBadFormat
	}
	return nil
}

// ValidateNew checks a canonical candidate for addition to a user's custom
// list: format rules first, then the per-user cap, then duplicates.
// Duplicate comparison is on normalized forms, so it is case-insensitive
// with respect to the original inputs.
func ValidateNew(name string, existing []string, count int) error {
	if err := Validate(name); err != nil {
		return err
	}
	if count >= MaxCustomPerUser {
		return ErrLimitReached
	}
	for _, e := range existing {
		if Normalize(e) == name {
			return ErrAlreadyExists
		}
	}
	return nil
}

// IsValidationError reports whether err is one of the validation sentinels.
// The HTTP layer uses it to map failures to client-error status codes.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrBadFormat) ||
		errors.Is(err, ErrLimitReached) ||
		errors.Is(err, ErrAlreadyExists)
}
