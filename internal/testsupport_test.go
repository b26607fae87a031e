package internal_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"adfgvx/internal"
	"github.com/stretchr/testify/require"
)

func TestRunSelfTest(t *testing.T) {
	prev := internal.ColorEnabled()
	t.Cleanup(func() { internal.SetColorEnabled(prev) })
	internal.SetColorEnabled(false)

	var buf bytes.Buffer
	failed := internal.RunSelfTest(&buf, rand.New(rand.NewSource(1918)), internal.SelfTestOptions{Rounds: 20})
	require.Zero(t, failed, buf.String())

	out := buf.String()
	for _, v := range internal.Variants {
		require.Contains(t, out, "== Self-test: "+string(v)+" ==")
	}
	require.Equal(t, 60, strings.Count(out, "PASSED"))
	require.Contains(t, out, "Total cases: 60, Failed: 0")
}

func TestRunSelfTest_UnknownVariant(t *testing.T) {
	var buf bytes.Buffer
	failed := internal.RunSelfTest(&buf, rand.New(rand.NewSource(1)), internal.SelfTestOptions{
		Variants: []internal.Variant{"ROT13"},
		Rounds:   1,
	})
	require.Equal(t, 1, failed)
	require.Contains(t, buf.String(), "unknown variant")
}
