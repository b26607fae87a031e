package internal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents decomposes s (NFKD) and drops every combining mark, so "Č" → "C"
// and "á" → "a". Input that fails to transform is returned unchanged.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.M)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Upper applies full Unicode upper-case mapping, so "ß" becomes "SS".
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// FoldToAlphabet rewrites letters the alphabet does not carry onto their
// stand-ins: W → V when W is absent, J → I when J is absent.
func FoldToAlphabet(s, alphabet string) string {
	if !strings.ContainsRune(alphabet, 'W') {
		s = strings.ReplaceAll(s, "W", "V")
	}
	if !strings.ContainsRune(alphabet, 'J') {
		s = strings.ReplaceAll(s, "J", "I")
	}
	return s
}

// Normalize prepares raw text for substitution.
//
// Behavior:
//  1. Strip accents and upper-case.
//  2. Fold W/J onto the alphabet.
//  3. Keep spaces, digits and alphabet members; drop everything else.
//
// Returns the filtered text and a display copy with one space between characters.
// Empty input yields two empty strings.
func Normalize(text, alphabet string) (filtered, display string) {
	text = FoldToAlphabet(Upper(StripAccents(text)), alphabet)

	var sb strings.Builder
	kept := make([]string, 0, len(text))
	for _, r := range text {
		if r == ' ' || unicode.IsDigit(r) || strings.ContainsRune(alphabet, r) {
			sb.WriteRune(r)
			kept = append(kept, string(r))
		}
	}
	return sb.String(), strings.Join(kept, " ")
}

// Dropped counts the characters of text that Normalize discards.
func Dropped(text, alphabet string) int {
	folded := FoldToAlphabet(Upper(StripAccents(text)), alphabet)
	filtered, _ := Normalize(text, alphabet)
	return len([]rune(folded)) - len([]rune(filtered))
}
