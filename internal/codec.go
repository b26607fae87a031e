package internal

import (
	"strings"
)

// Substitute replaces every character of filtered with its row and column labels.
//
// Parameters:
//   - filtered: normalised text (see Normalize); spaces are allowed
//   - m:        the keyed square
//   - labels:   row/column labels, len(labels) == m.Size
//
// Behavior:
//  1. Replace each space with SpaceMarker.
//  2. For each character, Locate it in m and emit labels[row], labels[col].
//  3. Characters not in m contribute nothing.
//
// Returns the label stream (always even length).
func Substitute(filtered string, m *Matrix, labels string) string {
	lab := []rune(labels)
	text := strings.ReplaceAll(filtered, " ", SpaceMarker)

	var sb strings.Builder
	sb.Grow(2 * len(text))
	for _, r := range text {
		row, col, ok := m.Locate(r)
		if !ok || row >= len(lab) || col >= len(lab) {
			continue
		}
		sb.WriteRune(lab[row])
		sb.WriteRune(lab[col])
	}
	return sb.String()
}

// Unsubstitute maps a label stream back to matrix characters, two labels at a time.
//
// Behavior:
//  1. Read (row, col) label pairs from the left.
//  2. A pair with an unknown label, or a lone trailing label, advances the cursor
//     by one position only. Later pairs may then be misaligned.
//  3. Replace every SpaceMarker in the result with a space.
//
// Returns the recovered text.
func Unsubstitute(stream string, m *Matrix, labels string) string {
	in := []rune(stream)
	lab := []rune(labels)

	var sb strings.Builder
	sb.Grow(len(in) / 2)
	for i := 0; i < len(in); {
		if i+1 >= len(in) {
			i++
			continue
		}
		row := indexRune(lab, in[i])
		col := indexRune(lab, in[i+1])
		if row < 0 || col < 0 {
			i++
			continue
		}
		if r, ok := m.At(row, col); ok {
			sb.WriteRune(r)
		}
		i += 2
	}
	return strings.ReplaceAll(sb.String(), SpaceMarker, " ")
}

// Skipped counts the characters of filtered that Substitute cannot place in m.
func Skipped(filtered string, m *Matrix) int {
	n := 0
	for _, r := range strings.ReplaceAll(filtered, " ", SpaceMarker) {
		if _, _, ok := m.Locate(r); !ok {
			n++
		}
	}
	return n
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
