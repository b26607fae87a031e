package internal_test

import (
	"math/rand"
	"sort"
	"testing"

	"adfgvx/internal"
	"github.com/stretchr/testify/require"
)

func sortedRunes(s string) string {
	rs := []rune(s)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}

func TestShuffleAlphabet_IsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, a := range []string{internal.AlphabetNoW, internal.AlphabetNoJ, internal.Alphabet36} {
		got := internal.ShuffleAlphabet(a, r)
		require.Len(t, got, len(a))
		require.Equal(t, sortedRunes(a), sortedRunes(got))
	}
}

func TestShuffleAlphabet_Deterministic(t *testing.T) {
	a := internal.ShuffleAlphabet(internal.Alphabet36, rand.New(rand.NewSource(99)))
	b := internal.ShuffleAlphabet(internal.Alphabet36, rand.New(rand.NewSource(99)))
	require.Equal(t, a, b)

	c := internal.ShuffleAlphabet(internal.Alphabet36, rand.New(rand.NewSource(100)))
	require.NotEqual(t, a, c)
}

func TestRandomAlphabet(t *testing.T) {
	got, err := internal.RandomAlphabet(internal.AlphabetNoJ)
	require.NoError(t, err)
	require.Equal(t, sortedRunes(internal.AlphabetNoJ), sortedRunes(got))

	// Usable as a square straight away.
	_, err = internal.BuildMatrix(got, 5)
	require.NoError(t, err)
}

func TestKeyedAlphabet(t *testing.T) {
	var k1, k2 [32]byte
	k2[0] = 1

	a := internal.KeyedAlphabet(internal.Alphabet36, k1)
	require.Equal(t, a, internal.KeyedAlphabet(internal.Alphabet36, k1))
	require.NotEqual(t, a, internal.KeyedAlphabet(internal.Alphabet36, k2))
	require.Equal(t, sortedRunes(internal.Alphabet36), sortedRunes(a))

	// Same key, different alphabet: independently shuffled.
	noW := internal.KeyedAlphabet(internal.AlphabetNoW, k1)
	noJ := internal.KeyedAlphabet(internal.AlphabetNoJ, k1)
	require.Equal(t, sortedRunes(internal.AlphabetNoW), sortedRunes(noW))
	require.Equal(t, sortedRunes(internal.AlphabetNoJ), sortedRunes(noJ))
}
