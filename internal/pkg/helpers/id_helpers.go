package helpers

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseIntPrefix reads the integer at the start of s the way a lenient
// integer parse does: leading spaces and a sign are allowed and parsing stops
// at the first non-digit ("12abc" is 12). ok is false when s has no digits.
func ParseIntPrefix(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LookupKey converts a path segment into a primary-key value. Segments with
// an integer prefix become that integer; anything else is returned unchanged
// so the lookup still runs and the database decides the outcome.
func LookupKey(segment string) interface{} {
	if n, ok := ParseIntPrefix(segment); ok {
		return n
	}
	return segment
}
