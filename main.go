// ADFGVX: field cipher toolkit
//
// Implements the ADFGX/ADFGVX family: a keyed Polybius square substitution
// followed by a keyword columnar transposition.
//
// Encoding (plaintext -> ciphertext):
// - Strip accents, upper-case, fold W→V or J→I, drop unsupported characters
// - Replace spaces with the XMEZERAX marker
// - Replace each character by its row and column labels (A D F G [V] X)
// - Deal the labels into one column per keyword letter, read columns in
//   alphabetical keyword order
//
// Decoding (ciphertext -> plaintext):
// - Keep only label characters
// - Rebuild column lengths from the total length and keyword length
// - Read rows back, map label pairs through the square, restore spaces
//
// Notes:
// - The square comes from --matrix (row-major string), --matrix-key
//   (passphrase, Argon2id-derived shuffle) or --random
// - Defaults may be stored in a YAML config (see `adfgvx config`)

package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"adfgvx/internal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var version = "dev"

var (
	// Global flags
	configPath  string
	variantName string
	verbose     bool
	noColor     bool
	pager       bool

	cfg    *internal.Config
	logger = zap.NewNop()
)

// errSelfTestFailed maps to exit status 1; every other error exits 2.
var errSelfTestFailed = errors.New("self-test failed")

var rootCmd = &cobra.Command{
	Use:   "adfgvx",
	Short: "ADFGX/ADFGVX field cipher",
	Long: `Encode and decode with the ADFGX and ADFGVX ciphers.

Variants:
  ADFGX_CZECH    5×5 square, 25 letters without W (W is written as V)
  ADFGX_ENGLISH  5×5 square, 25 letters without J (J is written as I)
  ADFGVX         6×6 square, A–Z and 0–9

Examples:
  adfgvx matrix --random
  adfgvx encode -k PRIVACY -m <36 chars> "attack at 1200"
  adfgvx decode -k PRIVACY -m <36 chars> "DXAFG VVDAX ..."`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		path := configPath
		if path == "" {
			path = internal.DefaultConfigPath()
		}
		cfg, err = internal.LoadConfig(path)
		if err != nil {
			return err
		}
		if variantName != "" {
			cfg.Variant = variantName
		}
		logger.Debug("config loaded", zap.String("path", path), zap.String("variant", cfg.Variant))

		// Color enablement: config default, on only for a TTY, off with --no-color
		internal.SetColorEnabled(cfg.Color && !noColor && term.IsTerminal(int(syscall.Stdout)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/adfgvx/config.yaml)")
	pf.StringVar(&variantName, "variant", "", "Cipher variant: ADFGX_CZECH, ADFGX_ENGLISH, ADFGVX (aliases: cz, en, v36)")
	pf.BoolVar(&verbose, "verbose", false, "Debug logging to stderr")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output (TTY-safe)")
	pf.BoolVar(&pager, "pager", true, "Paginate long output when writing to a TTY; --pager=false to disable")

	rootCmd.AddCommand(encodeCmd, decodeCmd, matrixCmd, remainingCmd, variantsCmd, selfTestCmd, configCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", internal.Style("error:", internal.Bold, internal.Red), err)
		if errors.Is(err, errSelfTestFailed) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
