// SPDX-License-Identifier: MIT

// Command sparsemat loads two sparse matrices in the triple text format and
// prints their sum, difference and product.
//
// Usage:
//
//	sparsemat [-config sparsemat.yaml] [-a matrix1.txt] [-b matrix2.txt] [-ops sum,product]
//	          [-plot-dir out] [-plot-format png] [-log-file run.log] [-verbosity verbose]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/logging"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	ConfigFile  string
	Left        string
	Right       string
	Operations  string
	PlotDir     string
	PlotFormat  string
	LogFile     string
	Verbosity   string
	ShowVersion bool

	set map[string]bool // flags given explicitly on the command line
}

func main() {
	cli := parseFlags(os.Args[1:])
	if cli.ShowVersion {
		fmt.Printf("sparsemat v%s\n", version)
		return
	}

	if err := execute(cli); err != nil {
		fmt.Fprintf(os.Stderr, "sparsemat: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags.
func parseFlags(args []string) *CLIConfig {
	cli := &CLIConfig{set: make(map[string]bool)}
	fs := flag.NewFlagSet("sparsemat", flag.ExitOnError)

	fs.StringVar(&cli.ConfigFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&cli.Left, "a", config.DefaultLeft, "Left operand file (A)")
	fs.StringVar(&cli.Right, "b", config.DefaultRight, "Right operand file (B)")
	fs.StringVar(&cli.Operations, "ops", "", "Comma-separated operations: sum,difference,product")
	fs.StringVar(&cli.PlotDir, "plot-dir", "", "Directory for spy plots of each result (disabled when empty)")
	fs.StringVar(&cli.PlotFormat, "plot-format", "", "Spy plot format: png, svg, pdf, ...")
	fs.StringVar(&cli.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.StringVar(&cli.Verbosity, "verbosity", "", "Logging verbosity: quiet, normal, verbose, debug")
	fs.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "sparsemat - sparse integer matrix arithmetic\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sparsemat [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sparsemat -a matrix1.txt -b matrix2.txt\n")
		fmt.Fprintf(os.Stderr, "  sparsemat -config sparsemat.yaml -ops product -plot-dir plots\n")
	}

	_ = fs.Parse(args)
	fs.Visit(func(f *flag.Flag) { cli.set[f.Name] = true })

	return cli
}

// resolveConfig loads the YAML file (if any) and applies explicit flags on top.
func resolveConfig(cli *CLIConfig) (*config.Config, error) {
	cfg := config.Default()
	if cli.ConfigFile != "" {
		loaded, err := config.Load(cli.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cli.set["a"] {
		cfg.Inputs.Left = cli.Left
	}
	if cli.set["b"] {
		cfg.Inputs.Right = cli.Right
	}
	if cli.set["ops"] {
		cfg.SetOperations(cli.Operations)
	}
	if cli.set["plot-dir"] {
		cfg.Plot.Dir = cli.PlotDir
	}
	if cli.set["plot-format"] {
		cfg.Plot.Format = cli.PlotFormat
	}
	if cli.set["log-file"] {
		cfg.Logging.File = cli.LogFile
	}
	if cli.set["verbosity"] {
		cfg.Logging.Verbosity = cli.Verbosity
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the driver logger from the logging section.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	level, err := logging.ParseVerbosity(cfg.Verbosity)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		return logging.NewFile("sparsemat", cfg.File, level)
	}

	return logging.New("sparsemat", os.Stderr, level), nil
}

// execute wires configuration, logging and the run.
func execute(cli *CLIConfig) error {
	cfg, err := resolveConfig(cli)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Close()

	log.Debugf("session %s", log.SessionID())
	if err = run(cfg, os.Stdout, log); err != nil {
		log.Errorf("run failed: %v", err)
		return err
	}

	return nil
}
