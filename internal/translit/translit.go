package translit

import (
	"strings"
	"unicode/utf8"
)

// Transliterator converts Uzbek text between Cyrillic and Latin script.
// The zero value is not usable; construct one with New.
type Transliterator struct {
	cyrToLat  map[rune]string
	latToCyr  map[rune]rune
	vowels    map[rune]bool
	compounds []*strings.Replacer
}

// New builds a Transliterator. All lookup tables are built here and never
// modified afterwards.
func New() *Transliterator {
	t := &Transliterator{
		cyrToLat:  make(map[rune]string, len(cyrToLat)),
		latToCyr:  make(map[rune]rune, len(latToCyr)),
		vowels:    make(map[rune]bool, len(cyrillicVowels)),
		compounds: make([]*strings.Replacer, 0, len(compoundTiers)),
	}
	for k, v := range cyrToLat {
		t.cyrToLat[k] = v
	}
	for k, v := range latToCyr {
		t.latToCyr[k] = v
	}
	for k, v := range cyrillicVowels {
		t.vowels[k] = v
	}
	for _, tier := range compoundTiers {
		oldnew := make([]string, 0, 2*len(tier))
		for _, r := range tier {
			oldnew = append(oldnew, r.Pattern, r.Replacement)
		}
		t.compounds = append(t.compounds, strings.NewReplacer(oldnew...))
	}
	return t
}

// ToLatin converts Uzbek Cyrillic text to Latin script.
//
// Е/е becomes "Ye"/"ye" at the start of a word or after a vowel, and "E"/"e"
// after a consonant. Every other Cyrillic letter has a fixed spelling.
// Runes outside the Cyrillic alphabet pass through unchanged.
func (t *Transliterator) ToLatin(s string) string {
	if s == "" {
		return ""
	}

	src, invalid := decode(s)
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range src {
		if c, ok := invalid[i]; ok {
			b.WriteByte(c)
			continue
		}
		switch r {
		case 'Е', 'е':
			iotated := atWordStart(src, i) || t.vowels[src[i-1]]
			switch {
			case iotated && r == 'Е':
				b.WriteString("Ye")
			case iotated:
				b.WriteString("ye")
			default:
				b.WriteString(cyrLatinE(r))
			}
		default:
			if lat, ok := t.cyrToLat[r]; ok {
				b.WriteString(lat)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

// ToCyrillic converts Uzbek Latin text to Cyrillic script.
//
// Multi-letter spellings are resolved first, in precedence order, so that
// "sh" becomes ш rather than с+ҳ and "yo'q" becomes йўқ. The remaining
// letters are then mapped one by one: e is э at the start of a word and е
// elsewhere, and an apostrophe that is not part of o' or g' becomes ъ.
// Runes outside the Latin alphabet pass through unchanged.
func (t *Transliterator) ToCyrillic(s string) string {
	if s == "" {
		return ""
	}

	for _, r := range t.compounds {
		s = r.Replace(s)
	}

	src, invalid := decode(s)
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i, r := range src {
		if c, ok := invalid[i]; ok {
			b.WriteByte(c)
			continue
		}
		switch {
		case r == 'e' || r == 'E':
			b.WriteRune(resolveE(r == 'E', atWordStart(src, i)))
		case r == '\'':
			b.WriteRune('ъ')
		case isApostrophe(r) && betweenLetters(src, i):
			// Curly and backtick apostrophes inside a word are the same
			// tutuq belgisi; elsewhere they are quotation marks.
			b.WriteRune('ъ')
		default:
			if cyr, ok := t.latToCyr[r]; ok {
				b.WriteRune(cyr)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

// decode splits s into runes. Each ill-formed byte becomes one
// utf8.RuneError entry and is recorded in invalid under its rune index, so
// callers can copy it through verbatim. invalid is nil for valid UTF-8.
func decode(s string) (src []rune, invalid map[int]byte) {
	src = make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if invalid == nil {
				invalid = make(map[int]byte)
			}
			invalid[len(src)] = s[i]
		}
		src = append(src, r)
		i += size
	}
	return src, invalid
}

// resolveE picks э (word start) or е (elsewhere) for a Latin e.
func resolveE(upper, wordStart bool) rune {
	switch {
	case wordStart && upper:
		return 'Э'
	case wordStart:
		return 'э'
	case upper:
		return 'Е'
	default:
		return 'е'
	}
}

func cyrLatinE(r rune) string {
	if r == 'Е' {
		return "E"
	}
	return "e"
}
