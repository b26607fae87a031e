package internal_test

import (
	"testing"

	"adfgvx/internal"
	"github.com/stretchr/testify/require"
)

func TestStripAccents(t *testing.T) {
	require.Equal(t, "Prilis zlutoucky kun", internal.StripAccents("Příliš žluťoučký kůň"))
	require.Equal(t, "Eeaou", internal.StripAccents("Éèâöû"))
	// Already decomposed input: e + COMBINING ACUTE ACCENT.
	require.Equal(t, "e", internal.StripAccents("e\u0301"))
	require.Equal(t, "", internal.StripAccents(""))
	// Spacing combining mark (MUSICAL SYMBOL COMBINING STEM).
	require.Equal(t, "A", internal.StripAccents("A\U0001D165"))
}

func TestUpper(t *testing.T) {
	require.Equal(t, "STRASSE", internal.Upper("straße"))
	require.Equal(t, "ŽLUŤOUČKÝ", internal.Upper("žluťoučký"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		alphabet string
		filtered string
		display  string
	}{
		{"empty", "", internal.AlphabetNoW, "", ""},
		{"accents and digits", "Příliš žluťoučký kůň, 2024!", internal.AlphabetNoW,
			"PRILIS ZLUTOUCKY KUN 2024", "P R I L I S   Z L U T O U C K Y   K U N   2 0 2 4"},
		{"W to V", "world", internal.AlphabetNoW, "VORLD", "V O R L D"},
		{"J to I", "Just", internal.AlphabetNoJ, "IUST", "I U S T"},
		{"W kept without J", "Wojna", internal.AlphabetNoJ, "WOINA", "W O I N A"},
		{"36 keeps both", "Jew 42", internal.Alphabet36, "JEW 42", "J E W   4 2"},
		{"sharp s expands", "Straße", internal.Alphabet36, "STRASSE", "S T R A S S E"},
		{"punctuation dropped", "a-b.c?", internal.Alphabet36, "ABC", "A B C"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filtered, display := internal.Normalize(tc.in, tc.alphabet)
			require.Equal(t, tc.filtered, filtered)
			require.Equal(t, tc.display, display)
		})
	}
}

func TestDropped(t *testing.T) {
	require.Equal(t, 0, internal.Dropped("hello world", internal.AlphabetNoW))
	require.Equal(t, 3, internal.Dropped("a-b.c?", internal.Alphabet36))
	// Accent marks are not counted as dropped characters.
	require.Equal(t, 0, internal.Dropped("čaj", internal.AlphabetNoW))
}
