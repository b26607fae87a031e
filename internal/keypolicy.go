package internal

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// KeyPolicy defines how a matrix passphrase becomes key material.
//   - KDF "argon2id" (default) stretches the passphrase so each guess is costly.
//   - KDF "none" hashes it once with SHA-256.
//
// The cipher itself stays historically weak; the KDF only slows down recovery
// of the passphrase from a leaked square.
type KeyPolicy struct {
	KDF         string // "argon2id" (default) or "none"
	KDFMemMB    uint32 // memory in MB
	KDFTime     uint32 // iterations
	KDFParallel uint8  // parallelism
	MinLength   int    // minimum passphrase length in runes; 0 disables the check
}

// DefaultKeyPolicy returns moderate Argon2id parameters suited to an
// interactive tool.
func DefaultKeyPolicy() KeyPolicy {
	return KeyPolicy{
		KDF:         "argon2id",
		KDFMemMB:    64,
		KDFTime:     3,
		KDFParallel: 1,
		MinLength:   8,
	}
}

// EffectiveKeyMaterial derives a 32-byte seed from the passphrase.
//   - "argon2id": Argon2id with the configured parameters and a fixed domain salt,
//     then SHA-256 to canonicalise.
//   - "none": SHA-256 of the passphrase.
func EffectiveKeyMaterial(passphrase string, policy KeyPolicy) ([32]byte, error) {
	var seed32 [32]byte

	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", "argon2id":
		salt := []byte("ADFGVX/v1/argon2id/matrix")
		mem := policy.KDFMemMB
		if mem == 0 {
			mem = 64
		}
		time := policy.KDFTime
		if time == 0 {
			time = 3
		}
		par := policy.KDFParallel
		if par == 0 {
			par = 1
		}

		derived := argon2.IDKey([]byte(passphrase), salt, time, mem*1024, par, 32)
		seed32 = sha256.Sum256(derived)
		return seed32, nil

	case "none":
		seed32 = sha256.Sum256([]byte(passphrase))
		return seed32, nil

	default:
		return seed32, fmt.Errorf("unknown KDF %q (supported: argon2id, none)", policy.KDF)
	}
}

// ValidatePassphrase enforces the policy's minimum length.
func ValidatePassphrase(passphrase string, policy KeyPolicy) error {
	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return fmt.Errorf("matrix key is empty")
	}
	// Count runes (not bytes) so multi-byte input is measured fairly.
	if n := utf8.RuneCountInString(passphrase); policy.MinLength > 0 && n < policy.MinLength {
		return fmt.Errorf("matrix key too short: need %d+ characters, got %d", policy.MinLength, n)
	}
	return nil
}

// MatrixFromPassphrase validates the passphrase, derives key material and
// returns the keyed matrix string for the scheme.
func MatrixFromPassphrase(passphrase string, s Scheme, policy KeyPolicy) (string, error) {
	if err := ValidatePassphrase(passphrase, policy); err != nil {
		return "", err
	}
	seed32, err := EffectiveKeyMaterial(passphrase, policy)
	if err != nil {
		return "", err
	}
	return KeyedAlphabet(s.Alphabet, seed32), nil
}
