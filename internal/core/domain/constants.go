package domain

import "regexp"

const HealthMessage = "Everything is working!"

// User field bounds.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 20
	MinUserNameLength = 2
	MaxUserNameLength = 30
	MinAgeValue       = 6
	MaxAgeValue       = 130
)

// Author field bounds.
const (
	MinAuthorNameLength    = 2
	MaxAuthorNameLength    = 30
	MinAuthorSurnameLength = 2
	MaxAuthorSurnameLength = 40
	MinBiographyLength     = 100
	MaxBiographyLength     = 2000
)

// Book field bounds.
const (
	MinTitleLength       = 4
	MaxTitleLength       = 255
	MinDescriptionLength = 20
	MaxDescriptionLength = 510
	MinNumberOfPages     = 30
	MaxNumberOfPages     = 5000
)

// Pagination defaults for the find-all endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var (
	// LatinOnlyRegexp restricts author names and surnames to latin letters,
	// spaces and hyphens.
	LatinOnlyRegexp = regexp.MustCompile(`^[a-zA-Z\s-]+$`)

	// LatinWithSymbolsRegexp allows latin text with digits and common
	// punctuation. Used for biographies, titles and descriptions.
	LatinWithSymbolsRegexp = regexp.MustCompile(`^[a-zA-Z0-9\s.,:;!?'"+\-()]+$`)
)

// ValidPassword reports whether a plaintext password satisfies the signup
// policy: 6-20 alphanumeric characters containing at least one lowercase
// letter, one uppercase letter and one digit.
func ValidPassword(password string) bool {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			return false
		}
	}
	return lower && upper && digit
}
