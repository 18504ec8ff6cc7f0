package domain

import (
	"strings"
	"unicode"
)

// ValidNamePart reports whether s is acceptable as a surname, first
// name or patronymic: non-empty after trimming and composed of
// Cyrillic letters only. Digits, punctuation and letters of other
// scripts are rejected.
func ValidNamePart(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) || !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}
