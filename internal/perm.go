package internal

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// ShuffleAlphabet returns a fresh permutation of alphabet drawn from r.
// The same source state always yields the same matrix string.
func ShuffleAlphabet(alphabet string, r *rand.Rand) string {
	chars := []rune(alphabet)
	r.Shuffle(len(chars), func(i, j int) { chars[i], chars[j] = chars[j], chars[i] })
	return string(chars)
}

// RandomAlphabet shuffles alphabet with a source seeded from crypto/rand.
// Each call owns its own generator, so concurrent callers never share state.
func RandomAlphabet(alphabet string) (string, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "", err
	}
	seed := int64(binary.BigEndian.Uint64(b[:]))
	return ShuffleAlphabet(alphabet, rand.New(rand.NewSource(seed))), nil
}

// KeyedAlphabet derives a deterministic matrix string from 32 bytes of key
// material (see EffectiveKeyMaterial). Both parties holding the same
// passphrase and policy rebuild the same square.
func KeyedAlphabet(alphabet string, seed32 [32]byte) string {
	// Domain-separate by alphabet so one passphrase keys each variant differently.
	h := sha256.Sum256(append(seed32[:], alphabet...))
	// Mix 4x uint64 chunks via XOR into a single int64 seed
	seed := int64(binary.BigEndian.Uint64(h[0:8])) ^
		int64(binary.BigEndian.Uint64(h[8:16])) ^
		int64(binary.BigEndian.Uint64(h[16:24])) ^
		int64(binary.BigEndian.Uint64(h[24:32]))
	return ShuffleAlphabet(alphabet, rand.New(rand.NewSource(seed)))
}
