package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"syscall"
	"time"

	"adfgvx/internal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// keyFlags are shared by encode, decode and matrix.
type keyFlags struct {
	keyword    string
	prompt     bool
	mask       bool
	matrix     string
	matrixKey  string
	promptKey  bool
	random     bool
	steps      bool
	noGroup    bool
	qr         bool
	verify     bool
	rounds     int
	seed       int64
	saveConfig bool
}

var (
	encFlags  keyFlags
	decFlags  keyFlags
	matFlags  keyFlags
	testFlags keyFlags
)

var encodeCmd = &cobra.Command{
	Use:   "encode [plaintext ...]",
	Short: "Encode plaintext (read from stdin when no arguments are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(cmd, args, &encFlags)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [ciphertext ...]",
	Short: "Decode ciphertext (read from stdin when no arguments are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(cmd, args, &decFlags)
	},
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Generate a square (random, or keyed by --matrix-key) and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatrix(cmd, &matFlags)
	},
}

var remainingCmd = &cobra.Command{
	Use:   "remaining [partial-matrix]",
	Short: "List alphabet characters not yet used in a partial matrix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRemaining,
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List supported cipher variants",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, v := range internal.Variants {
			s, _ := internal.Lookup(v)
			fmt.Fprintf(out, "%-14s %d×%d  labels %-6s  %s\n", v, s.Size, s.Size, s.Labels, s.Alphabet)
		}
	},
}

var selfTestCmd = &cobra.Command{
	Use:   "self-test",
	Short: "Round-trip random messages through every variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelfTest(cmd, &testFlags)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfig,
}

func init() {
	for _, c := range []struct {
		cmd *cobra.Command
		f   *keyFlags
	}{{encodeCmd, &encFlags}, {decodeCmd, &decFlags}} {
		fs := c.cmd.Flags()
		fs.StringVarP(&c.f.keyword, "keyword", "k", "", "Transposition keyword")
		fs.BoolVar(&c.f.prompt, "prompt", false, "Prompt for the keyword (no echo); overrides --keyword")
		fs.BoolVar(&c.f.mask, "mask", true, "With --prompt, show * while typing (use --mask=false to disable)")
		fs.StringVarP(&c.f.matrix, "matrix", "m", "", "Square as a row-major string (25 or 36 characters)")
		fs.StringVar(&c.f.matrixKey, "matrix-key", "", "Passphrase that derives the square")
		fs.BoolVar(&c.f.promptKey, "prompt-matrix-key", false, "Prompt for the matrix passphrase")
		fs.BoolVar(&c.f.steps, "steps", false, "Show intermediate steps")
	}
	ef := encodeCmd.Flags()
	ef.BoolVar(&encFlags.random, "random", false, "Use a fresh random square (printed with --steps)")
	ef.BoolVar(&encFlags.noGroup, "no-group", false, "Print ciphertext without five-letter groups")
	ef.BoolVar(&encFlags.qr, "qr", false, "Also print the ciphertext as a QR code")
	ef.BoolVar(&encFlags.verify, "verify", false, "Decode the result and fail unless it round-trips")

	mf := matrixCmd.Flags()
	mf.StringVar(&matFlags.matrixKey, "matrix-key", "", "Passphrase that derives the square (default: random)")
	mf.BoolVar(&matFlags.promptKey, "prompt-matrix-key", false, "Prompt for the matrix passphrase")
	mf.BoolVar(&matFlags.saveConfig, "save", false, "Store the generated square in the config file")

	tf := selfTestCmd.Flags()
	tf.IntVar(&testFlags.rounds, "rounds", 8, "Cases per variant")
	tf.Int64Var(&testFlags.seed, "seed", 0, "Random seed (0: time-based)")
}

func activeScheme() (internal.Scheme, error) {
	v, err := internal.ParseVariant(cfg.Variant)
	if err != nil {
		return internal.Scheme{}, err
	}
	return internal.Lookup(v)
}

// resolveKeyword: --prompt, then --keyword, then config.
func resolveKeyword(f *keyFlags) (string, error) {
	if f.prompt {
		kw, err := internal.PromptSecret("keyword", f.mask, false)
		return strings.TrimSpace(kw), err
	}
	if kw := strings.TrimSpace(f.keyword); kw != "" {
		return kw, nil
	}
	if kw := strings.TrimSpace(cfg.Keyword); kw != "" {
		return kw, nil
	}
	return "", fmt.Errorf("%w: use --keyword, --prompt or set keyword in the config", internal.ErrEmptyKeyword)
}

// resolveMatrix: --matrix, --matrix-key / --prompt-matrix-key, --random,
// then config matrix and config matrix_key.
func resolveMatrix(f *keyFlags, s internal.Scheme, allowRandom bool) (string, error) {
	switch {
	case strings.TrimSpace(f.matrix) != "":
		return strings.ToUpper(strings.TrimSpace(f.matrix)), nil
	case f.promptKey:
		pass, err := internal.PromptSecret("matrix key", f.mask, true)
		if err != nil {
			return "", err
		}
		return internal.MatrixFromPassphrase(pass, s, cfg.KeyPolicy())
	case f.matrixKey != "":
		return internal.MatrixFromPassphrase(f.matrixKey, s, cfg.KeyPolicy())
	case allowRandom && f.random:
		return internal.RandomAlphabet(s.Alphabet)
	case strings.TrimSpace(cfg.Matrix) != "":
		return strings.ToUpper(strings.TrimSpace(cfg.Matrix)), nil
	case cfg.MatrixKey != "":
		return internal.MatrixFromPassphrase(cfg.MatrixKey, s, cfg.KeyPolicy())
	}
	if allowRandom {
		return "", fmt.Errorf("no square given: use --matrix, --matrix-key or --random")
	}
	return "", fmt.Errorf("no square given: use --matrix or --matrix-key")
}

// readInput joins args, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func runEncode(cmd *cobra.Command, args []string, f *keyFlags) error {
	s, err := activeScheme()
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	keyword, err := resolveKeyword(f)
	if err != nil {
		return err
	}
	matrix, err := resolveMatrix(f, s, true)
	if err != nil {
		return err
	}

	encode := internal.Encode
	if f.verify {
		encode = internal.EncodeVerified
	}
	res, err := encode(text, matrix, keyword, s.Variant)
	if err != nil {
		return err
	}

	if n := internal.Dropped(text, s.Alphabet); n > 0 {
		logger.Warn("dropped unsupported characters", zap.Int("count", n))
	}
	if n := internal.Skipped(res.Filtered, res.Matrix); n > 0 {
		logger.Warn("skipped characters missing from the square", zap.Int("count", n))
	}
	logger.Debug("encoded",
		zap.String("variant", string(s.Variant)),
		zap.Int("keyword_len", len([]rune(keyword))),
		zap.Int("substituted_len", len(res.Substituted)),
		zap.Strings("columns", res.Columns))

	out := cmd.OutOrStdout()
	if f.steps {
		section(out, "Square")
		for _, line := range internal.RenderMatrix(res.Matrix, s.Labels) {
			fmt.Fprintln(out, "  "+line)
		}
		fmt.Fprintf(out, "  %s\n", internal.Style(res.Matrix.String(), internal.Gray))
		section(out, "Filtered")
		fmt.Fprintln(out, "  "+res.Display)
		section(out, "Substitution")
		fmt.Fprintln(out, "  "+internal.FormatFive(res.Substituted))
		section(out, "Columns")
		for _, c := range res.Columns {
			fmt.Fprintln(out, "  "+c)
		}
		section(out, "Ciphertext")
	}

	ct := res.Ciphertext
	if cfg.Group && !f.noGroup {
		ct = internal.FormatFive(ct)
	}
	fmt.Fprintln(out, ct)

	if f.qr {
		q, err := internal.RenderQR(res.Ciphertext)
		if err != nil {
			return err
		}
		fmt.Fprint(out, q)
	}
	return nil
}

func runDecode(cmd *cobra.Command, args []string, f *keyFlags) error {
	s, err := activeScheme()
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	keyword, err := resolveKeyword(f)
	if err != nil {
		return err
	}
	matrix, err := resolveMatrix(f, s, false)
	if err != nil {
		return err
	}

	res, err := internal.Decode(text, matrix, keyword, s.Variant)
	if err != nil {
		return err
	}
	if n := internal.Stray(text, s.Labels); n > 0 {
		logger.Warn("ignored non-label characters in ciphertext", zap.Int("count", n))
	}
	if len(res.Cleaned)%2 != 0 {
		logger.Warn("ciphertext has odd length; last label dropped", zap.Int("length", len(res.Cleaned)))
	}
	logger.Debug("decoded",
		zap.String("variant", string(s.Variant)),
		zap.Int("cipher_len", len(res.Cleaned)))

	out := cmd.OutOrStdout()
	if f.steps {
		section(out, "Square")
		for _, line := range internal.RenderMatrix(res.Matrix, s.Labels) {
			fmt.Fprintln(out, "  "+line)
		}
		section(out, "Substitution")
		fmt.Fprintln(out, "  "+internal.FormatFive(res.Substituted))
		section(out, "Plaintext")
	}
	fmt.Fprintln(out, res.Plaintext)
	return nil
}

func runMatrix(cmd *cobra.Command, f *keyFlags) error {
	s, err := activeScheme()
	if err != nil {
		return err
	}

	var matrix string
	switch {
	case f.promptKey:
		pass, perr := internal.PromptSecret("matrix key", true, true)
		if perr != nil {
			return perr
		}
		matrix, err = internal.MatrixFromPassphrase(pass, s, cfg.KeyPolicy())
	case f.matrixKey != "":
		matrix, err = internal.MatrixFromPassphrase(f.matrixKey, s, cfg.KeyPolicy())
	default:
		matrix, err = internal.RandomAlphabet(s.Alphabet)
	}
	if err != nil {
		return err
	}
	m, err := internal.BuildMatrix(matrix, s.Size)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, matrix)
	for _, line := range internal.RenderMatrix(m, s.Labels) {
		fmt.Fprintln(out, line)
	}

	if f.saveConfig {
		path := configPath
		if path == "" {
			path = internal.DefaultConfigPath()
		}
		cfg.Variant = string(s.Variant)
		cfg.Matrix = matrix
		if err := cfg.Save(path); err != nil {
			return err
		}
		logger.Info("square saved", zap.String("path", path))
	}
	return nil
}

func runRemaining(cmd *cobra.Command, args []string) error {
	s, err := activeScheme()
	if err != nil {
		return err
	}
	partial := ""
	if len(args) == 1 {
		partial = args[0]
	}
	rest := internal.Remaining(partial, s.Alphabet)
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d/%d)\n", rest, len(rest), s.Cells())
	return nil
}

func runSelfTest(cmd *cobra.Command, f *keyFlags) error {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("self-test", zap.Int64("seed", seed), zap.Int("rounds", f.rounds))

	outIsTTY := term.IsTerminal(int(syscall.Stdout))
	inIsTTY := term.IsTerminal(int(syscall.Stdin))
	_, height, _ := term.GetSize(int(syscall.Stdout))
	if height <= 0 {
		height = 24
	}

	fmt.Fprintln(cmd.OutOrStdout(), internal.Banner(version))
	failed := internal.RunSelfTest(cmd.OutOrStdout(), rand.New(rand.NewSource(seed)), internal.SelfTestOptions{
		Rounds:   f.rounds,
		Paginate: pager && outIsTTY && inIsTTY,
		Height:   height,
	})
	if failed > 0 {
		return fmt.Errorf("%w: %d case(s), seed %d", errSelfTestFailed, failed, seed)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	shown := *cfg
	if shown.MatrixKey != "" {
		shown.MatrixKey = "(set)"
	}
	return shown.WriteYAML(cmd.OutOrStdout())
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, internal.Style(title+":", internal.Bold, internal.Blue))
}
