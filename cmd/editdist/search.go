package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/editdist"
)

// fileResult is the outcome of searching one file.
type fileResult struct {
	path    string
	size    int
	matches []editdist.Match
}

func searchCmd(opts *options) *cobra.Command {
	var metric string
	var k, workers int
	var noPrefilter, countOnly bool

	cmd := &cobra.Command{
		Use:   "search PATTERN FILE...",
		Short: "Approximate search in files",
		Long: `Report every position where PATTERN occurs within K edits.

Each match is printed as FILE:START-END:K, in file order and then end order.
Files are searched in parallel.

Examples:
  editdist search -k 1 GATTACA genome.fa        # Levenshtein search
  editdist search -m hamming -k 2 GATTACA *.fa  # mismatches only
  editdist search -c -k 2 needle a.txt b.txt    # match counts`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine(!noPrefilter)
			if err != nil {
				return err
			}
			req := searchRequest{
				pattern: []byte(args[0]),
				files:   args[1:],
				metric:  metric,
				k:       k,
				workers: workers,
			}
			results, err := runSearch(cmd.Context(), eng, req, opts.log)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results, countOnly)
		},
	}

	cmd.Flags().StringVarP(&metric, "metric", "m", metricLevenshtein, "metric (levenshtein, hamming)")
	cmd.Flags().IntVarP(&k, "bound", "k", 1, "maximum distance")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (default: number of CPUs)")
	cmd.Flags().BoolVar(&noPrefilter, "no-prefilter", false, "disable the pigeonhole prefilter")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the number of matches per file")

	return cmd
}

type searchRequest struct {
	pattern []byte
	files   []string
	metric  string
	k       int
	workers int
}

// runSearch searches every file concurrently. Results keep the order of
// req.files; the first error cancels the remaining files.
func runSearch(ctx context.Context, eng *editdist.Engine, req searchRequest, log *slog.Logger) ([]fileResult, error) {
	if req.k < 0 {
		return nil, editdist.ErrNegativeBound
	}
	var find func(text []byte) []editdist.Match
	switch req.metric {
	case metricLevenshtein:
		find = func(text []byte) []editdist.Match {
			out, _ := eng.LevenshteinSearchAll(req.pattern, text, req.k)
			return out
		}
	case metricHamming:
		find = func(text []byte) []editdist.Match {
			out, _ := eng.HammingSearchAll(req.pattern, text, req.k)
			return out
		}
	default:
		return nil, fmt.Errorf("%w: %q", errMetric, req.metric)
	}

	workers := req.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]fileResult, len(req.files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	start := time.Now()
	for i, path := range req.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			t0 := time.Now()
			matches := find(text)
			log.Debug("searched file",
				slog.String("file", path),
				slog.String("size", humanize.Bytes(uint64(len(text)))),
				slog.Int("matches", len(matches)),
				slog.Duration("elapsed", time.Since(t0)))

			results[i] = fileResult{path: path, size: len(text), matches: matches}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += r.size
	}
	elapsed := time.Since(start)
	log.Info("search done",
		slog.Int("files", len(results)),
		slog.String("bytes", humanize.Bytes(uint64(total))),
		slog.String("throughput", throughput(total, elapsed)),
		slog.Duration("elapsed", elapsed))

	return results, nil
}

// throughput formats bytes per second, e.g. "1.2 GB/s".
func throughput(n int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	return humanize.Bytes(uint64(float64(n)/d.Seconds())) + "/s"
}

func printResults(w io.Writer, results []fileResult, countOnly bool) error {
	for _, r := range results {
		if countOnly {
			if _, err := fmt.Fprintf(w, "%s:%s\n", r.path, humanize.Comma(int64(len(r.matches)))); err != nil {
				return err
			}
			continue
		}
		for _, m := range r.matches {
			if _, err := fmt.Fprintf(w, "%s:%d-%d:%d\n", r.path, m.Start, m.End, m.K); err != nil {
				return err
			}
		}
	}
	return nil
}
