package internal

// Alphabet registry for the ADFGX/ADFGVX family.
//
// Each variant fixes three things:
// - the alphabet laid out in the square (25 or 36 symbols)
// - the row/column labels (5 or 6 letters)
// - the square dimension (5 or 6)
//
// Variants (by name):
//   ADFGX_CZECH    25 letters, no W (W → V), labels A D F G X
//   ADFGX_ENGLISH  25 letters, no J (J → I), labels A D F G X
//   ADFGVX         A–Z and 0–9,              labels A D F G V X

import (
	"fmt"
	"strings"
)

const (
	// AlphabetNoW is the 25-letter alphabet without W.
	AlphabetNoW = "ABCDEFGHIJKLMNOPQRSTUVXYZ"
	// AlphabetNoJ is the 25-letter alphabet without J.
	AlphabetNoJ = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
	// Alphabet36 is the alphanumeric alphabet used by ADFGVX.
	Alphabet36 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// LabelsADFGX names the rows and columns of a 5×5 square.
	LabelsADFGX = "ADFGX"
	// LabelsADFGVX names the rows and columns of a 6×6 square.
	LabelsADFGVX = "ADFGVX"

	// SpaceMarker stands in for a literal space during substitution.
	SpaceMarker = "XMEZERAX"
)

// Variant selects one of the fixed cipher configurations.
type Variant string

const (
	VariantNoW Variant = "ADFGX_CZECH"   // 5×5, W folded to V
	VariantNoJ Variant = "ADFGX_ENGLISH" // 5×5, J folded to I
	Variant36  Variant = "ADFGVX"        // 6×6, letters and digits
)

// Variants lists the supported variants in display order.
var Variants = []Variant{VariantNoW, VariantNoJ, Variant36}

// Scheme is the resolved configuration of a variant.
type Scheme struct {
	Variant  Variant
	Alphabet string
	Labels   string
	Size     int
}

var schemes = map[Variant]Scheme{
	VariantNoW: {Variant: VariantNoW, Alphabet: AlphabetNoW, Labels: LabelsADFGX, Size: 5},
	VariantNoJ: {Variant: VariantNoJ, Alphabet: AlphabetNoJ, Labels: LabelsADFGX, Size: 5},
	Variant36:  {Variant: Variant36, Alphabet: Alphabet36, Labels: LabelsADFGVX, Size: 6},
}

// aliases maps lowercased alternative names onto variants.
var aliases = map[string]Variant{
	"adfgx_czech":   VariantNoW,
	"cz":            VariantNoW,
	"czech":         VariantNoW,
	"v25-no-w":      VariantNoW,
	"v25_no_w":      VariantNoW,
	"adfgx_english": VariantNoJ,
	"en":            VariantNoJ,
	"english":       VariantNoJ,
	"v25-no-j":      VariantNoJ,
	"v25_no_j":      VariantNoJ,
	"adfgvx":        Variant36,
	"v36":           Variant36,
}

// Lookup resolves a variant to its scheme.
func Lookup(v Variant) (Scheme, error) {
	s, ok := schemes[v]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	return s, nil
}

// ParseVariant resolves a user-supplied name (case-insensitive, aliases allowed).
func ParseVariant(name string) (Variant, error) {
	v, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Cells returns the number of characters a matrix string must contain.
func (s Scheme) Cells() int {
	return s.Size * s.Size
}
