package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Krypto02/Lab0/logging"
	"github.com/Krypto02/Lab0/numeric"
	"github.com/Krypto02/Lab0/value"
)

var (
	verbose    bool
	configPath string

	// log is replaced in PersistentPreRunE once --verbose is known; the
	// default keeps flag-parse failures loggable.
	log zerolog.Logger = logging.NewStderr(false)
	cfg Config
)

var rootCmd = &cobra.Command{
	Use:   "lab0",
	Short: "Data preprocessing CLI tool",
	Long: `lab0 - data preprocessing CLI tool

A fixed set of independent data cleaning, numeric transformation,
text processing and data structure operations, invoked one at a time.

Use --verbose for detailed operation logging.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.NewStderr(verbose)
		if verbose {
			log.Debug().Msg("verbose logging enabled")
		}
		if configPath == "" {
			return nil
		}
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		log.Debug().Str("path", configPath).Msg("configuration loaded")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Data cleaning operations",
	Long:  "Missing value handling, deduplication and data quality validation.",
}

var numericCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Numeric data processing operations",
	Long:  "Normalization, standardization, clipping and scaling transforms.",
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Text processing operations",
	Long:  "Tokenization, punctuation stripping and stopword removal.",
}

var structCmd = &cobra.Command{
	Use:   "struct",
	Short: "Data structure operations",
	Long:  "Shuffling, flattening and order-preserving deduplication.",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with default option values")
	rootCmd.AddCommand(cleanCmd, numericCmd, textCmd, structCmd)
}

// Execute runs the root command and applies the single error-handling
// boundary: log, short diagnostic with a type-specific hint on stderr,
// exit non-zero. Commands themselves are all-or-nothing.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		if isInputError(err) {
			color.New(color.FgYellow).Fprintln(os.Stderr, "Check your input format and data types")
		}
		os.Exit(1)
	}
}

// isInputError reports whether err is a shape or domain error deserving
// the input-format hint.
func isInputError(err error) bool {
	return errors.Is(err, value.ErrSyntax) ||
		errors.Is(err, value.ErrNotNumeric) ||
		errors.Is(err, numeric.ErrBadRange) ||
		errors.Is(err, numeric.ErrNonNumericValue)
}

// opErr prefixes err with the operation name for the boundary diagnostic.
func opErr(operation string, err error) error {
	return fmt.Errorf("in %s: %w", operation, err)
}

// echo writes a primary-result or report line to stdout.
func echo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// joinFloats renders floats with prec decimal places, comma-joined.
// A negative prec uses the compact value rendering (integers without a
// decimal point).
func joinFloats(values []float64, prec int) string {
	out := ""
	for i, f := range values {
		if i > 0 {
			out += ","
		}
		if prec < 0 {
			out += value.Number(f).String()
		} else {
			out += fmt.Sprintf("%.*f", prec, f)
		}
	}
	return out
}
