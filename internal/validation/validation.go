package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"faqsite/internal/faq"
)

// MaxKeywordLength bounds the keyword, in runes.
const MaxKeywordLength = 200

// NormalizeKeyword trims surrounding whitespace and truncates overly long
// input. Case folding happens at match time.
func NormalizeKeyword(keyword string) string {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) <= MaxKeywordLength {
		return keyword
	}
	runes := []rune(keyword)
	return strings.TrimSpace(string(runes[:MaxKeywordLength]))
}

// ValidateCategory parses a category filter. Accepts "", "all", "すべて" or
// one of the known buckets.
func ValidateCategory(raw string) (faq.Bucket, bool) {
	return faq.ParseCategory(raw)
}

// ParseLimit parses a result limit. Non-numeric input yields def; the result
// is clamped to [0, maxN].
func ParseLimit(raw string, def, maxN int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = def
	}
	if n < 0 {
		return 0
	}
	if n > maxN {
		return maxN
	}
	return n
}

// ParseID parses a record id. Only positive integers are valid.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
