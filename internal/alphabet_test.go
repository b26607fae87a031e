package internal_test

import (
	"testing"

	"adfgvx/internal"
	"github.com/stretchr/testify/require"
)

func TestLookup_SchemeInvariants(t *testing.T) {
	for _, v := range internal.Variants {
		s, err := internal.Lookup(v)
		require.NoError(t, err)
		require.Equal(t, v, s.Variant)
		require.Len(t, []rune(s.Alphabet), s.Cells(), "alphabet must fill the square")
		require.Len(t, []rune(s.Labels), s.Size)

		seen := map[rune]bool{}
		for _, r := range s.Alphabet {
			require.False(t, seen[r], "duplicate %q in %s", r, v)
			seen[r] = true
		}
		// The space marker must be encodable in every variant.
		for _, r := range internal.SpaceMarker {
			require.True(t, seen[r], "%s cannot carry marker letter %q", v, r)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := internal.Lookup("PLAYFAIR")
	require.ErrorIs(t, err, internal.ErrUnknownVariant)
}

func TestParseVariant(t *testing.T) {
	cases := map[string]internal.Variant{
		"ADFGX_CZECH":   internal.VariantNoW,
		"cz":            internal.VariantNoW,
		" v25-no-w ":    internal.VariantNoW,
		"adfgx_english": internal.VariantNoJ,
		"EN":            internal.VariantNoJ,
		"V25_NO_J":      internal.VariantNoJ,
		"adfgvx":        internal.Variant36,
		"v36":           internal.Variant36,
	}
	for in, want := range cases {
		got, err := internal.ParseVariant(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := internal.ParseVariant("vigenere")
	require.ErrorIs(t, err, internal.ErrUnknownVariant)
}
