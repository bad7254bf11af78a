// Package utf8codec converts between Go strings and their UTF-8 byte form.
//
// Ill-formed input is never an error: invalid byte sequences in either
// direction are replaced with U+FFFD, so every string survives a round trip
// through Encode and Decode in its well-formed form.
package utf8codec

import (
	"golang.org/x/text/encoding/unicode"
)

func Encode(s string) ([]byte, error) {
	return unicode.UTF8.NewEncoder().Bytes([]byte(s))
}

func Decode(b []byte) (string, error) {
	d, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
