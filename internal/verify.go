package internal

import (
	"fmt"
)

// EncodeVerified encodes plaintext and immediately decodes the ciphertext with
// the same matrix and keyword. The recovered text must equal the normalised
// plaintext with the characters the matrix cannot carry removed (digits under
// the 25-letter variants). On mismatch nothing is returned but an error
// wrapping ErrRoundTrip.
func EncodeVerified(plaintext, matrixString, keyword string, v Variant) (*EncodeResult, error) {
	enc, err := Encode(plaintext, matrixString, keyword, v)
	if err != nil {
		return nil, err
	}
	dec, err := Decode(enc.Ciphertext, matrixString, keyword, v)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	want := Carried(enc.Filtered, enc.Matrix)
	if dec.Plaintext != want {
		return nil, fmt.Errorf("%w: have %q, want %q", ErrRoundTrip, dec.Plaintext, want)
	}
	return enc, nil
}

// VerifyRoundTrip is EncodeVerified with the result discarded.
func VerifyRoundTrip(plaintext, matrixString, keyword string, v Variant) error {
	_, err := EncodeVerified(plaintext, matrixString, keyword, v)
	return err
}

// Carried returns filtered without the characters m cannot encode; spaces
// are kept whenever every marker letter is in the square.
func Carried(filtered string, m *Matrix) string {
	markerOK := true
	for _, r := range SpaceMarker {
		if _, _, ok := m.Locate(r); !ok {
			markerOK = false
			break
		}
	}
	out := make([]rune, 0, len(filtered))
	for _, r := range filtered {
		if r == ' ' {
			if markerOK {
				out = append(out, r)
			}
			continue
		}
		if _, _, ok := m.Locate(r); ok {
			out = append(out, r)
		}
	}
	return string(out)
}
