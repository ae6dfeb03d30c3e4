// Package main provides the editdist CLI: distances between strings, fuzzy
// search over files, and backend diagnostics.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/editdist"
	"github.com/coregx/editdist/levenshtein"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose   bool
	logFormat string
	backend   string
	strategy  string

	log *slog.Logger
}

// engine builds an Engine from the persistent flags and the given prefilter
// setting.
func (o *options) engine(prefilter bool) (*editdist.Engine, error) {
	cfg := editdist.DefaultConfig()
	cfg.Backend = o.backend
	cfg.EnablePrefilter = prefilter

	s, ok := levenshtein.ParseStrategy(o.strategy)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", o.strategy)
	}
	cfg.Strategy = s

	eng, err := editdist.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}
	o.log.Debug("engine ready",
		slog.String("backend", eng.Backend().String()),
		slog.String("strategy", s.String()),
		slog.Bool("prefilter", prefilter))
	return eng, nil
}

func main() {
	err := newRootCmd(os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "editdist",
		Short: "Edit distances and approximate search over bytes",
		Long: `editdist computes Hamming, Levenshtein and restricted Damerau-Levenshtein
distances and finds approximate occurrences of a pattern in files.

Commands:
  distance  Distance between two strings
  search    Approximate search in files
  backends  Show vector backends and CPU features`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			log, err := newLogger(logOut, opts.logFormat, opts.verbose)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "auto", "vector backend (auto, scalar, narrow, wide)")
	rootCmd.PersistentFlags().StringVar(&opts.strategy, "strategy", "auto", "Levenshtein algorithm (auto, diagonal, bitvector, exponential)")

	rootCmd.AddCommand(distanceCmd(opts))
	rootCmd.AddCommand(searchCmd(opts))
	rootCmd.AddCommand(backendsCmd(opts))

	return rootCmd
}
