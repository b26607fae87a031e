package internal_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"adfgvx/internal"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ADFGVX_VARIANT", "ADFGVX_KEYWORD", "ADFGVX_MATRIX", "ADFGVX_MATRIX_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := internal.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, internal.DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := internal.DefaultConfig()
	cfg.Variant = "cz"
	cfg.Keyword = "PRIVACY"
	cfg.Matrix = internal.AlphabetNoW
	cfg.KDF = "none"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := internal.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
	require.NoError(t, loaded.Validate())
	require.Equal(t, "none", loaded.KeyPolicy().KDF)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADFGVX_VARIANT", "en")
	t.Setenv("ADFGVX_KEYWORD", "SECRET")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: ADFGVX\nkeyword: PLAIN\ngroup: false\n"), 0o600))

	cfg, err := internal.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Variant)
	require.Equal(t, "SECRET", cfg.Keyword)
	require.False(t, cfg.Group)
	require.True(t, cfg.Color, "unset keys keep their defaults")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: [unterminated\n"), 0o600))
	_, err := internal.LoadConfig(path)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := internal.DefaultConfig()
	cfg.Variant = "enigma"
	require.ErrorIs(t, cfg.Validate(), internal.ErrUnknownVariant)

	cfg = internal.DefaultConfig()
	cfg.Matrix = internal.AlphabetNoW // 25 characters for a 6×6 square
	require.ErrorIs(t, cfg.Validate(), internal.ErrBadMatrixLength)

	cfg = internal.DefaultConfig()
	cfg.KDF = "bcrypt"
	require.Error(t, cfg.Validate())
}

func TestConfig_KeyPolicy(t *testing.T) {
	cfg := internal.DefaultConfig()
	cfg.KDFMemMB = 16
	p := cfg.KeyPolicy()
	require.Equal(t, uint32(16), p.KDFMemMB)
	require.Equal(t, internal.DefaultKeyPolicy().KDFTime, p.KDFTime)
}

func TestConfig_WriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, internal.DefaultConfig().WriteYAML(&buf))
	require.Contains(t, buf.String(), "variant: ADFGVX")
	require.NotContains(t, buf.String(), "keyword")
}
