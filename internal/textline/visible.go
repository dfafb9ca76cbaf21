package textline

import "unicode/utf8"

// IsRuneStart reports whether b starts a visible character.
func IsRuneStart(b byte) bool {
	return utf8.RuneStart(b)
}

// VisibleLen counts the visible characters in p.
func VisibleLen(p []byte) int {
	n := 0
	for _, b := range p {
		if utf8.RuneStart(b) {
			n++
		}
	}
	return n
}
