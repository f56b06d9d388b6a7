// SPDX-License-Identifier: MIT
// Package: cli
//
// cli.go — cobra command, configuration resolution and evaluation.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/squares/average"
	"github.com/katalvlaran/squares/convert"
	"github.com/katalvlaran/squares/internal/config"
	"github.com/katalvlaran/squares/internal/logging"
)

// Flag names.
const (
	flagNumbers   = "list_of_numbers"
	flagWeights   = "list_of_weights"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// flagValues receives the raw flag values before they are layered over the
// configuration file.
type flagValues struct {
	numbers    []string
	weights    []string
	configPath string
	logLevel   string
	logFormat  string
}

// Run executes the squares command with args (without the program name),
// printing the result to stdout and diagnostics to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args))

	return cmd.ExecuteContext(ctx)
}

// NewCommand builds the root cobra command. Defaults are constructed per
// call; nothing is shared between commands.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	def := config.Default()
	fv := &flagValues{}

	cmd := &cobra.Command{
		Use:   "squares",
		Short: "Calculates the average of squares.",
		Long: `Calculates the average of squares: the sum of weight*number^2 over
the given numbers. Every list flag takes zero or more values; each value
may itself hold several whitespace-separated integers.`,
		Example: `  squares
  squares --list_of_numbers 2 4 8 --list_of_weights 1 1 0
  squares --list_of_numbers "2 4 8" --list_of_weights "1 1 0"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return invalidArgument(fmt.Errorf("unexpected argument %q", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd, fv)
			if err != nil {
				return err
			}
			log := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

			result, err := Evaluate(cfg.Numbers, cfg.Weights, log)
			if err != nil {
				log.Debug("Evaluation failed.", "error", err)
				return invalidArgument(err)
			}

			log.Debug("Evaluation finished.", "result", result)
			_, err = fmt.Fprintln(stdout, result)
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidArgument(err)
	})

	flags := cmd.Flags()
	flags.StringArrayVar(&fv.numbers, flagNumbers, def.Numbers, "Input list of numbers")
	flags.StringArrayVar(&fv.weights, flagWeights, def.Weights, "Input list of weights")
	flags.StringVar(&fv.configPath, flagConfig, "", "Optional YAML file with default lists and log settings")
	flags.StringVar(&fv.logLevel, flagLogLevel, def.LogLevel, "Diagnostics level: 'debug', 'info', 'warn' or 'error'")
	flags.StringVar(&fv.logFormat, flagLogFormat, def.LogFormat, "Diagnostics format: 'text' or 'json'")

	return cmd
}

// resolve layers explicitly set flags over the configuration file.
func resolve(cmd *cobra.Command, fv *flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		if isInvalidSetting(err) {
			return config.Config{}, invalidArgument(err)
		}
		return config.Config{}, &ExitError{Code: ExitFailure, Message: "squares: " + err.Error(), Err: err}
	}

	flags := cmd.Flags()
	if flags.Changed(flagNumbers) {
		cfg.Numbers = fv.numbers
	}
	if flags.Changed(flagWeights) {
		cfg.Weights = fv.weights
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = fv.logLevel
	}
	if flags.Changed(flagLogFormat) {
		cfg.LogFormat = fv.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, invalidArgument(err)
	}

	return cfg, nil
}

func isInvalidSetting(err error) bool {
	return errors.Is(err, config.ErrInvalidLogLevel) || errors.Is(err, config.ErrInvalidLogFormat)
}

// Evaluate converts the raw fragments and returns the weighted sum of
// squares. The weights are always treated as supplied, so their count must
// match the numbers.
//
// Errors:
//   - *convert.ParseError (wrapped with the flag name) for a bad token.
//   - average.ErrLengthMismatch (wrapped) when the counts differ.
func Evaluate(numbers, weights []string, log *slog.Logger) (int, error) {
	nums, err := convert.Numbers(numbers)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", flagNumbers, err)
	}
	ws, err := convert.Numbers(weights)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", flagWeights, err)
	}
	log.Debug("Fragments converted.", "numbers", len(nums), "weights", len(ws))

	return average.AverageOfSquares(nums, average.WithWeights(ws))
}
