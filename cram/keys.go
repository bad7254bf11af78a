package cram

import (
	"cmp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// validString returns s with each run of ill-formed UTF-8 replaced by
// U+FFFD. Strings are interned and written in this form.
func validString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}

// compareKeys orders mapping keys by their UTF-16 code units. This differs
// from byte order only when a character in U+E000-U+FFFF meets one above
// U+FFFF: the latter's leading surrogate sorts first.
func compareKeys(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			a1, a2 := utf16Units(ra)
			b1, b2 := utf16Units(rb)
			if c := cmp.Compare(a1, b1); c != 0 {
				return c
			}
			return cmp.Compare(a2, b2)
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

func utf16Units(r rune) (rune, rune) {
	if r < 0x10000 {
		return r, 0
	}
	return utf16.EncodeRune(r)
}
