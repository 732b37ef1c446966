package translit

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/kirlot/internal/script"
)

// ErrInvalidDirection is returned by ParseDirection for unknown names.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction names the target script of a conversion.
type Direction string

const (
	// Latin converts Cyrillic text to Latin.
	Latin Direction = "latin"
	// Cyrillic converts Latin text to Cyrillic.
	Cyrillic Direction = "cyrillic"
	// Auto picks the target from the dominant script of the input.
	Auto Direction = "auto"
)

// ParseDirection parses a direction name. Besides the canonical names it
// accepts the Uzbek "lotin"/"kril" and the short "lat"/"cyr".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latin", "lat", "lotin":
		return Latin, nil
	case "cyrillic", "cyr", "kril", "krill":
		return Cyrillic, nil
	case "auto", "":
		return Auto, nil
	default:
		return "", fmt.Errorf("%w: %q (want latin, cyrillic or auto)", ErrInvalidDirection, s)
	}
}

// Resolve turns Auto into a concrete direction for text. Cyrillic text is
// converted to Latin and Latin text to Cyrillic; text in neither script
// resolves to Latin, which leaves it unchanged.
func Resolve(d Direction, text string) Direction {
	if d != Auto {
		return d
	}
	if script.Detect(text) == script.Latin {
		return Cyrillic
	}
	return Latin
}

// Convert converts text towards d. Auto is resolved against text first.
func (t *Transliterator) Convert(text string, d Direction) string {
	if Resolve(d, text) == Cyrillic {
		return t.ToCyrillic(text)
	}
	return t.ToLatin(text)
}

var std = New()

// ToLatin converts Uzbek Cyrillic text to Latin using a shared Transliterator.
func ToLatin(s string) string { return std.ToLatin(s) }

// ToCyrillic converts Uzbek Latin text to Cyrillic using a shared Transliterator.
func ToCyrillic(s string) string { return std.ToCyrillic(s) }
