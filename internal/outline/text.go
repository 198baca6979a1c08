package outline

import (
	"strings"
	"unicode"
)

// collapseSpace trims the string and collapses interior whitespace runs
// to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimSpace trims leading and trailing whitespace only, leaving interior
// spacing untouched.
func trimSpace(s string) string {
	return strings.TrimSpace(s)
}

// isAllDigits reports whether the string is non-empty and purely numeric.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// digitRatio returns the fraction of characters that are digits.
func digitRatio(s string) float64 {
	total := 0
	digits := 0
	for _, r := range s {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}

// isUpperCase reports whether the string has at least one cased character
// and no lowercase ones.
func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitleCase reports whether the string is title-cased: every cased run
// starts with an uppercase character followed only by lowercase ones, and
// at least one cased character exists.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// dedupeKey normalizes heading text for document-wide de-duplication:
// non-word characters are stripped and the rest lowercased, so
// "Introduction" and "INTRODUCTION " share a key.
func dedupeKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
