package validate

import (
	"strconv"
	"strings"
	"unicode"
)

// Query sanitizes a catalog search term: trims, caps length, rejects control
// characters. The catalog names are Vietnamese, so no character allow-list.
func Query(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	runes := []rune(s)
	if len(runes) > 60 {
		runes = runes[:60]
		s = string(runes)
	}
	for _, r := range runes {
		if unicode.IsControl(r) {
			return "", false
		}
	}
	return s, true
}

// ID parses a product identifier (positive integer).
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}

// Quantity parses a cart quantity. Zero and negative values are valid input
// (they mean remove); only non-numeric input is rejected.
func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

// Password bounds a login password before the hash comparison (bcrypt caps
// input at 72 bytes).
func Password(s string) bool {
	return len(s) > 0 && len(s) <= 72
}
