package translit

import "unicode"

// isBoundary reports whether r separates words for the purpose of the
// contextual е/э rules. Both directions share this set.
func isBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r',
		'.', ',', '!', '?', ':', ';', '(', ')', '"', '-':
		return true
	}
	return false
}

// isApostrophe reports whether r is one of the accepted apostrophe glyphs.
func isApostrophe(r rune) bool {
	switch r {
	case '\'', '‘', '’', '`':
		return true
	}
	return false
}

// atWordStart reports whether position i of s begins a word: it is the first
// rune, it follows a boundary rune, or it follows an apostrophe that itself
// opens a word. An apostrophe after a letter is the tutuq belgisi (ъ) and
// does not start a word: "in'ektsiya" keeps е, "'ekran'" gets э.
func atWordStart(s []rune, i int) bool {
	for ; i > 0; i-- {
		prev := s[i-1]
		if isBoundary(prev) {
			return true
		}
		if !isApostrophe(prev) {
			return false
		}
	}
	return true
}

// betweenLetters reports whether the rune at i has a letter on both sides.
func betweenLetters(s []rune, i int) bool {
	return i > 0 && i+1 < len(s) && unicode.IsLetter(s[i-1]) && unicode.IsLetter(s[i+1])
}
