package domain

import (
	"strings"
	"unicode"
)

// Normalize prepares text for storage:
//   - trims leading/trailing whitespace
//   - compresses every run of whitespace (spaces, tabs, newlines) into one space
//
// Case, diacritics, hyphens, and apostrophes are preserved.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeKey returns the comparison key of a name or continent:
// Normalize followed by lowercasing. Two strings with equal keys are
// considered the same country (or continent).
func NormalizeKey(text string) string {
	return strings.ToLower(Normalize(text))
}
