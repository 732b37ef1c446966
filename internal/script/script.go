// Package script identifies which alphabet a piece of Uzbek text is written
// in. It is used to pick a conversion direction when the caller asks for
// automatic detection.
package script

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmpty is returned by Validate for empty or whitespace-only text.
var ErrEmpty = errors.New("text cannot be empty")

// Script is the alphabet a text is written in.
type Script int

const (
	// Unknown means the text has no Cyrillic or Latin letters.
	Unknown Script = iota
	Cyrillic
	Latin
)

func (s Script) String() string {
	switch s {
	case Cyrillic:
		return "cyrillic"
	case Latin:
		return "latin"
	default:
		return "unknown"
	}
}

// Detect returns the dominant script of text by counting Cyrillic and Latin
// letters. Ties with at least one letter go to Cyrillic, since mixed text is
// most often Cyrillic prose quoting Latin names.
func Detect(text string) Script {
	var cyr, lat int
	for _, r := range text {
		switch {
		case unicode.In(r, unicode.Cyrillic):
			cyr++
		case unicode.In(r, unicode.Latin):
			lat++
		}
	}

	switch {
	case cyr == 0 && lat == 0:
		return Unknown
	case cyr >= lat:
		return Cyrillic
	default:
		return Latin
	}
}

// Validate checks that text is worth converting.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}
	return nil
}
