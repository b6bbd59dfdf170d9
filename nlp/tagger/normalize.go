package tagger

import (
	"strconv"
	"strings"
)

const (
	HYPHEN = "!HYPHEN"
	YEAR   = "!YEAR"
	DIGITS = "!DIGITS"

	MIN_YEAR, MAX_YEAR = 1800, 2100
)

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Normalize maps a word to the form the feature templates see: hyphenated
// words (not starting with a hyphen) become !HYPHEN, four digit years in
// 1800-2100 become !YEAR, other numbers !DIGITS, and everything else is
// lowercased.
func Normalize(word string) string {
	switch {
	case strings.Contains(word, "-") && word[0] != '-':
		return HYPHEN
	case isDigits(word):
		if len(word) == 4 {
			if year, err := strconv.Atoi(word); err == nil && year >= MIN_YEAR && year <= MAX_YEAR {
				return YEAR
			}
		}
		return DIGITS
	default:
		return strings.ToLower(word)
	}
}
