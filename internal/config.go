package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults the CLI falls back to when a flag is not given.
type Config struct {
	Variant   string `yaml:"variant"`
	Keyword   string `yaml:"keyword,omitempty"`
	Matrix    string `yaml:"matrix,omitempty"`
	MatrixKey string `yaml:"matrix_key,omitempty"`

	KDF         string `yaml:"kdf"`
	KDFMemMB    uint32 `yaml:"kdf_mem_mb"`
	KDFTime     uint32 `yaml:"kdf_time"`
	KDFParallel uint8  `yaml:"kdf_parallel"`

	Group bool `yaml:"group"` // print ciphertext in blocks of five
	Color bool `yaml:"color"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	p := DefaultKeyPolicy()
	return &Config{
		Variant:     string(Variant36),
		KDF:         p.KDF,
		KDFMemMB:    p.KDFMemMB,
		KDFTime:     p.KDFTime,
		KDFParallel: p.KDFParallel,
		Group:       true,
		Color:       true,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/adfgvx/config.yaml (or the
// platform equivalent). Empty if no config directory can be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "adfgvx", "config.yaml")
}

// LoadConfig reads a YAML config. A missing file yields the defaults.
// Environment overrides are applied last.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	// Keywords and matrices are key material.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// WriteYAML writes the config to w in the same form Save uses.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADFGVX_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := os.Getenv("ADFGVX_KEYWORD"); v != "" {
		c.Keyword = v
	}
	if v := os.Getenv("ADFGVX_MATRIX"); v != "" {
		c.Matrix = v
	}
	if v := os.Getenv("ADFGVX_MATRIX_KEY"); v != "" {
		c.MatrixKey = v
	}
}

// Validate checks the variant name and, when set, the matrix length.
func (c *Config) Validate() error {
	v, err := ParseVariant(c.Variant)
	if err != nil {
		return err
	}
	s, _ := Lookup(v)
	if c.Matrix != "" {
		if n := utf8.RuneCountInString(c.Matrix); n != s.Cells() {
			return fmt.Errorf("config matrix: %w: need %d characters, got %d", ErrBadMatrixLength, s.Cells(), n)
		}
	}
	switch strings.ToLower(strings.TrimSpace(c.KDF)) {
	case "", "argon2id", "none":
	default:
		return fmt.Errorf("invalid kdf %q (valid: argon2id, none)", c.KDF)
	}
	return nil
}

// KeyPolicy returns the passphrase policy described by the config.
func (c *Config) KeyPolicy() KeyPolicy {
	p := DefaultKeyPolicy()
	if c.KDF != "" {
		p.KDF = c.KDF
	}
	if c.KDFMemMB != 0 {
		p.KDFMemMB = c.KDFMemMB
	}
	if c.KDFTime != 0 {
		p.KDFTime = c.KDFTime
	}
	if c.KDFParallel != 0 {
		p.KDFParallel = c.KDFParallel
	}
	return p
}
