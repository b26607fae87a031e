package internal

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// Terminal output: ANSI styling, the labelled square, and ciphertext as a QR code.
// Style is a no-op once SetColorEnabled(false) has been called.

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// ANSI escape codes (exported)
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m" // Tokyo Night blue
	Cyan   = "\x1b[38;2;42;195;222m"  // Tokyo Night cyan
	Purple = "\x1b[38;2;187;154;247m" // Tokyo Night purple
	Gray   = "\x1b[38;2;136;146;176m" // Dimmed foreground
	Red    = "\x1b[38;2;247;118;142m" // Tokyo Night red
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether ANSI styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, codes ...string) string {
	if !colorEnabled {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("ADFGVX field cipher toolkit - "+version, Bold, Purple)
}

// --- Square rendering ---

// RenderMatrix draws m with labels along the top and left edge:
//
//	  A D F G X
//	A B T A L P
//	D ...
func RenderMatrix(m *Matrix, labels string) []string {
	lab := []rune(labels)
	out := make([]string, 0, m.Size+1)

	var head strings.Builder
	head.WriteString("  ")
	for c := 0; c < m.Size && c < len(lab); c++ {
		head.WriteRune(' ')
		head.WriteString(Style(string(lab[c]), Bold, Cyan))
	}
	out = append(out, head.String())

	for r, row := range m.Rows() {
		var line strings.Builder
		if r < len(lab) {
			line.WriteString(Style(string(lab[r]), Bold, Cyan))
		} else {
			line.WriteRune('?')
		}
		line.WriteRune(' ')
		for _, ch := range row {
			line.WriteRune(' ')
			line.WriteRune(ch)
		}
		out = append(out, line.String())
	}
	return out
}

// --- QR rendering ---

// RenderQR encodes text as a QR code (level M) and draws it with half-block
// characters, two modules per line, with a two-module quiet zone.
// Dark modules are drawn as spaces on a light block background so the code
// scans from a dark terminal.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}

	const quiet = 2
	size := code.Size + 2*quiet
	light := func(x, y int) bool {
		x, y = x-quiet, y-quiet
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return true
		}
		return !code.Black(x, y)
	}

	var b strings.Builder
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			top := light(x, y)
			bottom := y+1 < size && light(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
