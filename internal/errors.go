package internal

import "errors"

// Sentinel errors. Return them wrapped with context via fmt.Errorf("...: %w", ErrX)
// and match with errors.Is.
//
// Everything not listed here is absorbed silently: characters outside the
// alphabet are dropped, characters missing from the matrix are skipped and
// unknown labels are stepped over.
var (
	// ErrBadMatrixLength is returned when a matrix string does not hold exactly
	// size×size characters.
	ErrBadMatrixLength = errors.New("adfgvx: matrix string has wrong length")

	// ErrUnknownVariant is returned for an unrecognised variant selector.
	ErrUnknownVariant = errors.New("adfgvx: unknown variant")

	// ErrEmptyKeyword is returned when the transposition keyword has no characters.
	ErrEmptyKeyword = errors.New("adfgvx: keyword is empty")

	// ErrRoundTrip is returned by the verifying encoder when decoding the
	// ciphertext does not reproduce the normalised plaintext.
	ErrRoundTrip = errors.New("adfgvx: round-trip mismatch")
)
