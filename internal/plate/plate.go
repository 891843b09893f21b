// Package plate normalizes license plates so that lookups by plate are exact.
package plate

import (
	"strings"
	"unicode"
)

const MaxLen = 16

// Normalize upper-cases the plate and drops every whitespace rune,
// so " ab 123 cd" and "AB123CD" name the same vehicle.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// Valid reports whether a normalized plate is storable: 1..MaxLen letters,
// digits or dashes.
func Valid(s string) bool {
	if s == "" || len(s) > MaxLen {
		return false
	}
	for _, r := range s {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-') {
			return false
		}
	}
	return true
}
