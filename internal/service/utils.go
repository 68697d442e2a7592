package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitizeFileName keeps a user-supplied name usable as a single path
// element: invalid UTF-8, control characters and path separators are
// replaced with '_'. Ordinary names pass through unchanged.
func sanitizeFileName(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch {
		case r == utf8.RuneError && size == 1:
			result.WriteByte('_')
		case r == '/' || r == '\\' || unicode.IsControl(r):
			result.WriteByte('_')
		default:
			result.WriteRune(r)
		}
	}

	name := result.String()
	if name == "." || name == ".." {
		return strings.Repeat("_", len(name))
	}
	return name
}
