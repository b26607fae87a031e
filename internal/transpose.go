package internal

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ColumnOrder returns column indices sorted by the keyword character that heads
// each column. Equal characters keep their left-to-right order.
func ColumnOrder(keyword []rune) []int {
	order := make([]int, len(keyword))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keyword[order[a]] < keyword[order[b]]
	})
	return order
}

// Transpose performs the columnar phase.
//
// Behavior:
//  1. Drop every non-letter from stream.
//  2. Deal the letters into len(keyword) columns round-robin (position mod N).
//  3. Concatenate the columns in ColumnOrder.
//
// Returns the ciphertext and one "K: contents" line per column in visiting order.
// The keyword is used as given; callers upper-case it.
func Transpose(stream, keyword string) (string, []string, error) {
	key := []rune(keyword)
	if len(key) == 0 {
		return "", nil, ErrEmptyKeyword
	}

	cols := make([][]rune, len(key))
	i := 0
	for _, r := range stream {
		if !unicode.IsLetter(r) {
			continue
		}
		cols[i%len(key)] = append(cols[i%len(key)], r)
		i++
	}

	var sb strings.Builder
	sb.Grow(i)
	display := make([]string, 0, len(key))
	for _, idx := range ColumnOrder(key) {
		sb.WriteString(string(cols[idx]))
		display = append(display, fmt.Sprintf("%c: %s", key[idx], string(cols[idx])))
	}
	return sb.String(), display, nil
}

// Untranspose inverts Transpose for a stream of length letters.
//
// Behavior:
//  1. base = length / N, extra = length % N.
//  2. Walk ColumnOrder; column c (original index) takes base+1 characters
//     when c < extra, else base, read sequentially from ciphertext.
//  3. Read the rebuilt columns row by row.
//
// Ciphertext shorter than length is tolerated: columns are cut at its end.
func Untranspose(ciphertext, keyword string, length int) (string, error) {
	key := []rune(keyword)
	if len(key) == 0 {
		return "", ErrEmptyKeyword
	}
	in := []rune(ciphertext)
	if length < 0 {
		length = 0
	}

	n := len(key)
	base, extra := length/n, length%n

	cols := make([][]rune, n)
	pos := 0
	for _, idx := range ColumnOrder(key) {
		size := base
		if idx < extra {
			size++
		}
		end := min(pos+size, len(in))
		cols[idx] = in[min(pos, end):end]
		pos += size
	}

	out := make([]rune, 0, length)
	for row := 0; row <= base; row++ {
		for _, col := range cols {
			if row < len(col) {
				out = append(out, col[row])
			}
		}
	}
	return string(out), nil
}
