package internal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// PromptSecret reads a keyword or matrix passphrase from the terminal.
// If mask is true, input is read in raw mode with '*' echo; otherwise it uses
// the terminal's hidden input (no echo) via ReadPassword. With confirm the
// value is asked twice and must match.
// Prompts go to stderr so stdout stays clean for ciphertext.
// Errors are concise and never echo the secret.
func PromptSecret(what string, mask, confirm bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	read := readHidden
	if mask {
		read = readMasked
	}

	s1, err := read(fd, "Enter "+what+": ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return s1, nil
	}
	s2, err := read(fd, "Re-enter "+what+": ")
	if err != nil {
		return "", err
	}
	if s1 != s2 {
		return "", fmt.Errorf("%s entries do not match", what)
	}
	return s1, nil
}

func readHidden(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, "\r"+prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read input")
	}
	return string(b), nil
}

// readMasked uses raw mode with '*' echo and signal-safe restore.
func readMasked(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, "\r"+prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	var buf []rune
	for {
		var b [1]byte
		n, er := os.Stdin.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := rune(b[0])
		if ch == '\r' || ch == '\n' {
			fmt.Fprint(os.Stderr, "\r\n")
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(os.Stderr, "\b \b")
			}
			continue
		}
		if ch == 0x03 { // Ctrl-C arrives as a byte in raw mode
			restore()
			os.Exit(130)
		}
		// Ignore non-printable control characters
		if ch < 0x20 {
			continue
		}
		buf = append(buf, ch)
		fmt.Fprint(os.Stderr, "*")
	}
	return string(buf), nil
}
