// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/codec"
	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/logging"
	"github.com/katalvlaran/sparsemat/sparse"
)

const (
	matrixA = "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 4)\n"
	matrixI = "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 1)\n"
)

// writeInputs stores both operands in a temp dir and returns a config pointing at them.
func writeInputs(t *testing.T, left, right string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Inputs.Left = filepath.Join(dir, "matrix1.txt")
	cfg.Inputs.Right = filepath.Join(dir, "matrix2.txt")
	require.NoError(t, os.WriteFile(cfg.Inputs.Left, []byte(left), 0o600))
	require.NoError(t, os.WriteFile(cfg.Inputs.Right, []byte(right), 0o600))

	return cfg
}

func TestRun_AllSections(t *testing.T) {
	cfg := writeInputs(t, matrixA, matrixI)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, logging.Discard()))

	want := "sum: \n-----------------\nMatrix (2x2)\n(0, 0, 2)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 5)\n" +
		"difference: \n-----------------\nMatrix (2x2)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 3)\n" +
		"product: \n-----------------\nMatrix (2x2)\n(0, 0, 1)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 4)\n"
	assert.Equal(t, want, out.String())
}

func TestRun_SelectedOperationsKeepOrder(t *testing.T) {
	cfg := writeInputs(t, matrixA, matrixI)
	cfg.Operations = []string{config.OpProduct, config.OpSum}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, logging.Discard()))

	s := out.String()
	assert.NotContains(t, s, "difference: ")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("sum: ")), bytes.Index(out.Bytes(), []byte("product: ")))
}

func TestRun_MalformedInput(t *testing.T) {
	cfg := writeInputs(t, matrixA, "rows=2\ncols=2\n(0, 0)\n")

	var out bytes.Buffer
	err := run(cfg, &out, logging.Discard())
	require.ErrorIs(t, err, codec.ErrMalformedInput)
	assert.Zero(t, out.Len())
}

// TestRun_DimensionMismatchPrintsNothing: 2×3 by 2×2 fails before any section is written.
func TestRun_DimensionMismatchPrintsNothing(t *testing.T) {
	cfg := writeInputs(t, "rows=2\ncols=3\n(0, 2, 1)\n", matrixI)
	cfg.Operations = []string{config.OpProduct}

	var out bytes.Buffer
	err := run(cfg, &out, logging.Discard())
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "product")
	assert.Zero(t, out.Len())
}

func TestRun_Plots(t *testing.T) {
	cfg := writeInputs(t, matrixA, matrixI)
	cfg.Plot.Dir = filepath.Join(t.TempDir(), "plots")
	cfg.Plot.Format = "svg"

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, logging.Discard()))

	for _, op := range config.AllOperations {
		_, err := os.Stat(filepath.Join(cfg.Plot.Dir, op+".svg"))
		require.NoError(t, err, op)
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparsemat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs:\n  left: x.txt\n  right: y.txt\noperations: [sum]\n"), 0o600))

	cli := parseFlags([]string{"-config", path, "-b", "z.txt", "-ops", "product,difference"})
	cfg, err := resolveConfig(cli)
	require.NoError(t, err)

	assert.Equal(t, "x.txt", cfg.Inputs.Left, "file value kept when flag absent")
	assert.Equal(t, "z.txt", cfg.Inputs.Right)
	assert.Equal(t, []string{"product", "difference"}, cfg.Operations)
}

func TestResolveConfig_Invalid(t *testing.T) {
	_, err := resolveConfig(parseFlags([]string{"-ops", "divide"}))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestExecute_EndToEnd(t *testing.T) {
	cfg := writeInputs(t, matrixA, matrixI)
	logPath := filepath.Join(t.TempDir(), "run.log")

	cli := parseFlags([]string{
		"-a", cfg.Inputs.Left, "-b", cfg.Inputs.Right,
		"-ops", "sum", "-log-file", logPath, "-verbosity", "verbose",
	})
	require.NoError(t, execute(cli))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[sparsemat] [INFO] sum: 2x2, 4 entries")
}
