package internal

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// SelfTestOptions controls RunSelfTest.
type SelfTestOptions struct {
	Variants []Variant // variants to exercise (default: all)
	Rounds   int       // cases per variant (default: 8)
	MaxLen   int       // maximum plaintext length (default: 60)
	Paginate bool      // pause every screenful when the terminal is a TTY
	Height   int       // terminal height in rows for pagination logic
}

// RunSelfTest generates random plaintexts, keywords and matrices for each
// variant, prints each case, verifies the round trip and returns the number
// of failed cases.
//
// Parameters:
// - w:    destination for the report
// - r:    random source; a fixed seed reproduces a run
// - opts: see SelfTestOptions
func RunSelfTest(w io.Writer, r *rand.Rand, opts SelfTestOptions) int {
	if len(opts.Variants) == 0 {
		opts.Variants = Variants
	}
	if opts.Rounds <= 0 {
		opts.Rounds = 8
	}
	if opts.MaxLen <= 0 {
		opts.MaxLen = 60
	}

	failed := 0
	printed := 0
	for _, v := range opts.Variants {
		s, err := Lookup(v)
		if err != nil {
			fmt.Fprintf(w, "self-test: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(w, Style(fmt.Sprintf("== Self-test: %s ==", v), Bold))
		printed++

		for i := 0; i < opts.Rounds; i++ {
			plain := randomText(r, s.Alphabet, 1+r.Intn(opts.MaxLen))
			keyword := randomText(r, AlphabetNoW, 1+r.Intn(12))
			keyword = strings.ReplaceAll(keyword, " ", "")
			if keyword == "" {
				keyword = "K"
			}
			matrix := ShuffleAlphabet(s.Alphabet, r)

			result := "PASSED"
			if err := VerifyRoundTrip(plain, matrix, keyword, v); err != nil {
				result = "FAILED"
				failed++
				fmt.Fprintf(w, "  %v\n", err)
				printed++
			}
			fmt.Fprintf(w, "  %2d  key=%-12s len=%-3d %s\n", i+1, keyword, len(plain), Style(result, Bold))
			printed++

			if opts.Paginate && printed >= opts.Height-1 {
				fmt.Fprint(os.Stderr, "-- more -- (Enter to continue, q to quit) ")
				var buf [1]byte
				_, er := os.Stdin.Read(buf[:])
				fmt.Fprintln(os.Stderr)
				if er == nil && (buf[0] == 'q' || buf[0] == 'Q') {
					return failed
				}
				printed = 0
			}
		}
	}

	fmt.Fprintf(w, "%s %d, %s %d\n",
		Style("Total cases:", Bold), len(opts.Variants)*opts.Rounds,
		Style("Failed:", Bold), failed)
	return failed
}

// randomText draws n characters from alphabet plus the space.
// Spaces never lead, trail or repeat, matching typed input.
func randomText(r *rand.Rand, alphabet string, n int) string {
	chars := []rune(alphabet)
	out := make([]rune, 0, n)
	for len(out) < n {
		if len(out) > 0 && out[len(out)-1] != ' ' && len(out) < n-1 && r.Intn(6) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, chars[r.Intn(len(chars))])
	}
	return string(out)
}
