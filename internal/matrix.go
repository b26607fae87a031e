package internal

import (
	"fmt"
	"unicode/utf8"
)

// Matrix is the keyed Polybius square: Size rows of Size characters laid out
// row-major from the source string. It is never mutated after BuildMatrix.
type Matrix struct {
	Size  int
	cells []rune
}

// BuildMatrix slices s row-major into a size×size square.
// Length is counted in runes; anything other than size*size fails with
// ErrBadMatrixLength. Duplicate characters are accepted as-is.
func BuildMatrix(s string, size int) (*Matrix, error) {
	n := utf8.RuneCountInString(s)
	if size <= 0 || n != size*size {
		return nil, fmt.Errorf("%w: need %d characters, got %d", ErrBadMatrixLength, size*size, n)
	}
	return &Matrix{Size: size, cells: []rune(s)}, nil
}

// At returns the character at (row, col). ok is false outside the square.
func (m *Matrix) At(row, col int) (rune, bool) {
	if row < 0 || col < 0 || row >= m.Size || col >= m.Size {
		return 0, false
	}
	return m.cells[row*m.Size+col], true
}

// Locate returns the position of r. With duplicates the first occurrence in
// row-major order wins. ok is false when r is absent.
func (m *Matrix) Locate(r rune) (row, col int, ok bool) {
	for i, c := range m.cells {
		if c == r {
			return i / m.Size, i % m.Size, true
		}
	}
	return 0, 0, false
}

// Rows returns the square as one string per row.
func (m *Matrix) Rows() []string {
	out := make([]string, m.Size)
	for i := range out {
		out[i] = string(m.cells[i*m.Size : (i+1)*m.Size])
	}
	return out
}

// String returns the flat row-major source string.
func (m *Matrix) String() string {
	return string(m.cells)
}
