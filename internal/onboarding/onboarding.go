// Package onboarding holds the name-capture rules that run before a cycle is opened.
package onboarding

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sadopc/studycycle/internal/store"
)

// MinNameLength is the shortest accepted user name, counted in runes after trimming.
const MinNameLength = 2

var ErrNameTooShort = errors.New("name must have at least 2 characters")

// ValidateName trims raw and checks it is long enough.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrNameTooShort
	}
	return name, nil
}

// ShouldSkip reports whether the user already named themselves and saved a cycle,
// in which case the planner opens directly.
func ShouldSkip(p *store.Profile) bool {
	return p != nil && p.HasStudyCycle && strings.TrimSpace(p.UserName) != ""
}
