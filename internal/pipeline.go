package internal

import (
	"fmt"
	"strings"
	"unicode"
)

// EncodeResult carries the ciphertext and every intermediate the CLI renders.
type EncodeResult struct {
	Ciphertext  string
	Filtered    string // normalised plaintext, spaces kept
	Display     string // Filtered with one space between characters
	Substituted string
	Matrix      *Matrix
	Columns     []string // "K: contents" in visiting order
}

// DecodeResult carries the plaintext and the intermediates of a decode.
type DecodeResult struct {
	Plaintext   string
	Cleaned     string // ciphertext reduced to label characters
	Substituted string
	Matrix      *Matrix
}

// Encode runs Normalize → BuildMatrix → Substitute → Transpose.
//
// Parameters:
//   - plaintext:    raw text; unsupported characters are dropped silently
//   - matrixString: the keyed square, row-major, exactly Size² characters
//   - keyword:      transposition key, upper-cased here
//   - v:            cipher variant
//
// Returns ErrUnknownVariant, ErrBadMatrixLength or ErrEmptyKeyword (wrapped).
func Encode(plaintext, matrixString, keyword string, v Variant) (*EncodeResult, error) {
	s, err := Lookup(v)
	if err != nil {
		return nil, err
	}
	m, err := BuildMatrix(matrixString, s.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Variant, err)
	}

	filtered, display := Normalize(plaintext, s.Alphabet)
	substituted := Substitute(filtered, m, s.Labels)
	ct, cols, err := Transpose(substituted, Upper(keyword))
	if err != nil {
		return nil, err
	}

	return &EncodeResult{
		Ciphertext:  ct,
		Filtered:    filtered,
		Display:     display,
		Substituted: substituted,
		Matrix:      m,
		Columns:     cols,
	}, nil
}

// Decode runs Clean → Untranspose → Unsubstitute.
// Every character of ciphertext that is not one of the variant's labels
// (after upper-casing) is removed before the columns are rebuilt.
func Decode(ciphertext, matrixString, keyword string, v Variant) (*DecodeResult, error) {
	s, err := Lookup(v)
	if err != nil {
		return nil, err
	}
	m, err := BuildMatrix(matrixString, s.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Variant, err)
	}

	clean := CleanCiphertext(ciphertext, s.Labels)
	substituted, err := Untranspose(clean, Upper(keyword), len([]rune(clean)))
	if err != nil {
		return nil, err
	}

	return &DecodeResult{
		Plaintext:   Unsubstitute(substituted, m, s.Labels),
		Cleaned:     clean,
		Substituted: substituted,
		Matrix:      m,
	}, nil
}

// CleanCiphertext upper-cases s and keeps only characters found in labels.
func CleanCiphertext(s, labels string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(s) {
		if strings.ContainsRune(labels, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatFive removes spaces from s and regroups it into blocks of five
// separated by single spaces, the way ciphertext was sent by hand.
func FormatFive(s string) string {
	rs := []rune(strings.ReplaceAll(s, " ", ""))
	var sb strings.Builder
	for i, r := range rs {
		if i > 0 && i%5 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Remaining returns, in alphabet order, the characters of alphabet not yet
// present in the (case-insensitive) partial matrix input.
func Remaining(matrixInput, alphabet string) string {
	used := make(map[rune]struct{}, len(matrixInput))
	for _, r := range strings.ToUpper(matrixInput) {
		used[r] = struct{}{}
	}
	var sb strings.Builder
	for _, r := range alphabet {
		if _, ok := used[r]; !ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Stray counts the characters of ciphertext that CleanCiphertext removes,
// ignoring whitespace used for grouping.
func Stray(ciphertext, labels string) int {
	n := 0
	for _, r := range strings.ToUpper(ciphertext) {
		if !unicode.IsSpace(r) && !strings.ContainsRune(labels, r) {
			n++
		}
	}
	return n
}
