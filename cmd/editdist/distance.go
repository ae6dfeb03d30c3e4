package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/editdist"
)

var errMetric = errors.New("unsupported metric")

const (
	metricLevenshtein = "levenshtein"
	metricDamerau     = "damerau"
	metricHamming     = "hamming"
)

func distanceCmd(opts *options) *cobra.Command {
	var metric string
	var bound int

	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Distance between two strings",
		Long: `Print the distance between two strings.

Examples:
  editdist distance kitten sitting             # 3
  editdist distance -m damerau ca abc          # 3
  editdist distance -m hamming karolin kathrin # 3
  editdist distance -k 2 kitten sitting        # "> 2"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine(true)
			if err != nil {
				return err
			}
			bounded := cmd.Flags().Changed("bound")
			return runDistance(eng, metric, []byte(args[0]), []byte(args[1]), bound, bounded, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&metric, "metric", "m", metricLevenshtein, "metric (levenshtein, damerau, hamming)")
	cmd.Flags().IntVarP(&bound, "bound", "k", 0, "stop once the distance exceeds this bound")

	return cmd
}

func runDistance(eng *editdist.Engine, metric string, a, b []byte, k int, bounded bool, w io.Writer) error {
	var (
		d  int
		ok = true
	)
	switch metric {
	case metricLevenshtein:
		if bounded {
			d, ok = eng.LevenshteinDistanceBounded(a, b, k)
		} else {
			d = eng.LevenshteinDistance(a, b)
		}
	case metricDamerau:
		if bounded {
			d, ok = eng.DamerauLevenshteinDistanceBounded(a, b, k)
		} else {
			d = eng.DamerauLevenshteinDistance(a, b)
		}
	case metricHamming:
		var err error
		d, err = eng.HammingDistance(a, b)
		if err != nil {
			return fmt.Errorf("hamming distance: %w", err)
		}
		ok = !bounded || d <= k
	default:
		return fmt.Errorf("%w: %q", errMetric, metric)
	}

	if !ok {
		fmt.Fprintf(w, "> %d\n", k)
		return nil
	}
	fmt.Fprintln(w, d)
	return nil
}
