package utils

import "unicode/utf8"

// Truncate returns the first n characters of s. Characters are counted as
// runes so multi-byte text is never cut in the middle of a code point.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
