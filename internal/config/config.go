// SPDX-License-Identifier: MIT

// Package config holds the sparsemat run configuration. Values come from an
// optional YAML file and are then overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsemat/internal/logging"
	"github.com/katalvlaran/sparsemat/spy"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Operation names, in the order the driver prints them.
const (
	OpSum        = "sum"
	OpDifference = "difference"
	OpProduct    = "product"
)

// AllOperations lists every operation in print order.
var AllOperations = []string{OpSum, OpDifference, OpProduct}

// Default input paths.
const (
	DefaultLeft  = "matrix1.txt"
	DefaultRight = "matrix2.txt"
)

// Config is the full run configuration.
type Config struct {
	// Inputs are the two operand files.
	Inputs InputConfig `yaml:"inputs"`

	// Operations selects which results are printed; print order is fixed.
	Operations []string `yaml:"operations"`

	// Plot optionally renders each result as a spy plot.
	Plot PlotConfig `yaml:"plot"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig names the left (A) and right (B) operand files.
type InputConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// PlotConfig controls spy plot output. An empty Dir disables plotting.
type PlotConfig struct {
	Dir    string  `yaml:"dir"`
	Format string  `yaml:"format"`
	SizeCM float64 `yaml:"size_cm"`
}

// LoggingConfig defines logging configuration.
type LoggingConfig struct {
	// Verbosity is one of quiet, normal, verbose, debug.
	Verbosity string `yaml:"verbosity"`
	// File redirects log output from stderr into a file.
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Inputs:     InputConfig{Left: DefaultLeft, Right: DefaultRight},
		Operations: slices.Clone(AllOperations),
		Plot:       PlotConfig{Format: spy.DefaultFormat, SizeCM: 10},
		Logging:    LoggingConfig{Verbosity: logging.VerbosityNormal},
	}
}

// Load reads a YAML file on top of Default(). Unknown keys are rejected.
// An empty or comment-only file yields Default().
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil // no YAML document
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Wants reports whether op is enabled.
func (c *Config) Wants(op string) bool {
	return slices.Contains(c.Operations, op)
}

// SetOperations parses a comma-separated list such as "sum,product".
func (c *Config) SetOperations(list string) {
	var ops []string
	for _, op := range strings.Split(list, ",") {
		if op = strings.ToLower(strings.TrimSpace(op)); op != "" {
			ops = append(ops, op)
		}
	}
	c.Operations = ops
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Inputs.Left == "" || c.Inputs.Right == "" {
		return fmt.Errorf("%w: both inputs.left and inputs.right are required", ErrInvalidConfig)
	}
	if len(c.Operations) == 0 {
		return fmt.Errorf("%w: at least one operation is required", ErrInvalidConfig)
	}
	for _, op := range c.Operations {
		if !slices.Contains(AllOperations, op) {
			return fmt.Errorf("%w: unknown operation %q (must be one of %s)",
				ErrInvalidConfig, op, strings.Join(AllOperations, ", "))
		}
	}
	if c.Plot.Dir != "" {
		if !spy.ValidFormat(c.Plot.Format) {
			return fmt.Errorf("%w: unsupported plot format %q", ErrInvalidConfig, c.Plot.Format)
		}
		if c.Plot.SizeCM <= 0 {
			return fmt.Errorf("%w: plot.size_cm must be > 0", ErrInvalidConfig)
		}
	}
	if _, err := logging.ParseVerbosity(c.Logging.Verbosity); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
