// Package translit converts Uzbek text between the Cyrillic and Latin
// orthographies.
//
// Cyrillic to Latin is a direct rune-to-string substitution, except for Е/е,
// which becomes "Ye"/"ye" at the start of a word or after a vowel. Latin to
// Cyrillic first resolves the multi-letter spellings (yo'q, o', g', sh, ch,
// yo, yu, ya, ye, ts) in precedence order and then maps the remaining single
// letters, writing e as э at the start of a word and е elsewhere.
//
// The four apostrophe glyphs ' ‘ ’ ` are accepted interchangeably on input.
// Output always uses the straight apostrophe.
//
// Known lossy conversions:
//   - The soft sign (Ь/ь) has no Latin spelling and is dropped.
//   - Ц/ц is always written "ts", so "ts" always reads back as ц.
//   - Mid-word э is written "e" and reads back as е.
//
// Characters outside the Uzbek alphabets (digits, punctuation, other scripts)
// pass through unchanged. Bytes that are not valid UTF-8 are copied through
// as they are. A Transliterator is immutable after New and is safe
// for concurrent use by multiple goroutines.
package translit
