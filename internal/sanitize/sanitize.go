// Package sanitize guards the boundary between user input and the
// transliteration engine. Every piece of text is passed through Sanitize
// before it is converted or displayed.
//
// It also carries the word-count helpers used to enforce the paste limit of
// the interactive front-ends.
package sanitize

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// MaxRunes is the number of code points Sanitize keeps.
const MaxRunes = 5000

// PasteWordLimit is the word limit front-ends apply to pasted text.
const PasteWordLimit = 200

// controlFilter removes C0 control characters except tab, LF and CR.
// It holds no state and may be shared between goroutines.
var controlFilter = runes.Remove(runes.Predicate(isStrippedControl))

func isStrippedControl(r rune) bool {
	return r < 32 && r != '\t' && r != '\n' && r != '\r'
}

// Sanitize strips control characters below U+0020 other than tab, newline
// and carriage return, then truncates the result to MaxRunes code points.
// Ill-formed UTF-8 bytes are replaced by U+FFFD.
func Sanitize(raw string) string {
	// runes.Remove never fails on complete input.
	cleaned, _, _ := transform.String(controlFilter, raw)
	return truncateRunes(cleaned, MaxRunes)
}

// truncateRunes returns the first n code points of s.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// LimitWords keeps the first n words of s, joined by single spaces, and
// reports whether anything was cut. A limit of zero or less disables it.
func LimitWords(s string, n int) (string, bool) {
	if n <= 0 {
		return s, false
	}
	words := strings.Fields(s)
	if len(words) <= n {
		return s, false
	}
	return strings.Join(words[:n], " "), true
}
