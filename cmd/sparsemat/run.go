// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sparsemat/codec"
	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/logging"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/katalvlaran/sparsemat/spy"
)

// separator follows every section label.
const separator = "-----------------"

// kernels maps an operation name onto its sparse kernel.
var kernels = map[string]func(a, b *sparse.Matrix) (*sparse.Matrix, error){
	config.OpSum:        sparse.Add,
	config.OpDifference: sparse.Sub,
	config.OpProduct:    sparse.Mul,
}

// result is one computed section.
type result struct {
	op string
	m  *sparse.Matrix
}

// run loads both operands, computes every enabled operation and only then
// writes the sections, so a failing kernel leaves stdout untouched.
func run(cfg *config.Config, stdout io.Writer, log *logging.Logger) error {
	a, err := load(cfg.Inputs.Left, log)
	if err != nil {
		return err
	}
	b, err := load(cfg.Inputs.Right, log)
	if err != nil {
		return err
	}

	var results []result
	for _, op := range config.AllOperations {
		if !cfg.Wants(op) {
			continue
		}
		m, err := kernels[op](a, b)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Infof("%s: %dx%d, %d entries", op, m.Rows(), m.Cols(), m.Len())
		results = append(results, result{op: op, m: m})
	}

	for _, r := range results {
		if err = writeSection(stdout, r); err != nil {
			return err
		}
	}

	if cfg.Plot.Dir == "" {
		return nil
	}

	return plotResults(cfg.Plot, results, log)
}

func load(path string, log *logging.Logger) (*sparse.Matrix, error) {
	m, err := codec.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %s: %dx%d, %d entries", path, m.Rows(), m.Cols(), m.Len())

	return m, nil
}

// writeSection prints "<op>: ", the separator and the encoded matrix.
func writeSection(w io.Writer, r result) error {
	if _, err := fmt.Fprintf(w, "%s: \n%s\n", r.op, separator); err != nil {
		return err
	}

	return codec.Encode(w, r.m)
}

// plotResults renders one spy plot per result into cfg.Dir.
// Empty-shaped results cannot be plotted and are skipped with a warning.
func plotResults(cfg config.PlotConfig, results []result, log *logging.Logger) error {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}

	for _, r := range results {
		if r.m.Rows() == 0 || r.m.Cols() == 0 {
			log.Warnf("skipping %s plot: empty shape %dx%d", r.op, r.m.Rows(), r.m.Cols())
			continue
		}
		path := filepath.Join(cfg.Dir, r.op+"."+cfg.Format)
		opts := spy.Options{Title: r.op, Size: vg.Length(cfg.SizeCM) * vg.Centimeter}
		if err := spy.SaveFile(path, r.m, opts); err != nil {
			return fmt.Errorf("%s plot: %w", r.op, err)
		}
		log.Infof("wrote %s", path)
	}

	return nil
}
