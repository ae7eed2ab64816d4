package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krypto02/Lab0/numeric"
	"github.com/Krypto02/Lab0/value"
)

// runCommand executes the root command with args, capturing stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), execErr
}

// TestCLI_RemoveMissing runs the end-to-end happy path: parse, clean,
// comma-joined result line.
func TestCLI_RemoveMissing(t *testing.T) {
	out, err := runCommand(t, "clean", "remove-missing", "1,None,3,,5")
	require.NoError(t, err)
	assert.Equal(t, "1,3,5\n", out)
}

// TestCLI_Normalize checks six-decimal formatting of results.
func TestCLI_Normalize(t *testing.T) {
	out, err := runCommand(t, "numeric", "normalize", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "0.000000,0.500000,1.000000\n", out)
}

// TestCLI_NormalizeBadRange propagates the domain error to the caller.
func TestCLI_NormalizeBadRange(t *testing.T) {
	_, err := runCommand(t, "numeric", "normalize", "1,2,3", "--min-val", "5", "--max-val", "1")
	assert.ErrorIs(t, err, numeric.ErrBadRange)
}

// TestCLI_NonNumericInput rejects a malformed numeric list.
func TestCLI_NonNumericInput(t *testing.T) {
	_, err := runCommand(t, "numeric", "standardize", "1,abc,3")
	assert.ErrorIs(t, err, value.ErrNotNumeric)
}

// TestCLI_Tokenize covers a text command output line.
func TestCLI_Tokenize(t *testing.T) {
	out, err := runCommand(t, "text", "tokenize", "Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

// TestCLI_Unique covers the struct group with a report line.
func TestCLI_Unique(t *testing.T) {
	out, err := runCommand(t, "struct", "unique", "1,2,2,3,3,4", "--report")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4\nRemoved 2 duplicates (33.3% reduction)\n", out)
}

// TestCLI_ShuffleSeeded: the same seed yields the same output line.
func TestCLI_ShuffleSeeded(t *testing.T) {
	a, err := runCommand(t, "struct", "shuffle", "1,2,3,4,5", "--seed", "42")
	require.NoError(t, err)
	b, err := runCommand(t, "struct", "shuffle", "1,2,3,4,5", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestCLI_Flatten parses a nested literal end to end.
func TestCLI_Flatten(t *testing.T) {
	out, err := runCommand(t, "struct", "flatten", "[[1,2],[3,4],[5]]")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5\n", out)
}

// TestIsInputError classifies shape and domain errors for the hint line.
func TestIsInputError(t *testing.T) {
	assert.True(t, isInputError(value.ErrSyntax))
	assert.True(t, isInputError(value.ErrNotNumeric))
	assert.True(t, isInputError(numeric.ErrBadRange))
	assert.True(t, isInputError(numeric.ErrNonNumericValue))
	assert.False(t, isInputError(os.ErrNotExist))
	assert.True(t, isInputError(opErr("clip", numeric.ErrBadRange)), "wrapping must be transparent")
}

// TestJoinFloats covers fixed-precision and compact rendering.
func TestJoinFloats(t *testing.T) {
	assert.Equal(t, "0.50,1.00", joinFloats([]float64{0.5, 1}, 2))
	assert.Equal(t, "2,2.5,4", joinFloats([]float64{2, 2.5, 4}, -1))
	assert.Equal(t, "", joinFloats(nil, 2))
}

// TestParseScalar mirrors the list-item coercion for single flag values.
func TestParseScalar(t *testing.T) {
	assert.Equal(t, value.Number(0), parseScalar("0"))
	assert.Equal(t, value.Number(1.5), parseScalar("1.5"))
	assert.Equal(t, value.String("unknown"), parseScalar("unknown"))
	assert.Equal(t, value.None(), parseScalar("none"))
}

// TestLoadConfig reads defaults from a YAML file and applies the
// threshold override.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab0.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"missingThreshold: 0.5\nfillValue: \"-1\"\nstopwords:\n  - is\n  - a\n"), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.missingThreshold())
	assert.Equal(t, "-1", c.FillValue)
	assert.Equal(t, []string{"is", "a"}, c.Stopwords)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	assert.Equal(t, 0.3, Config{}.missingThreshold(), "default threshold without config")
}
