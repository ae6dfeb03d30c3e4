package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/coregx/editdist/lane"
	"github.com/coregx/editdist/vec"
)

func backendsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "Show vector backends and CPU features",
		Long: `List the compiled-in vector backends, the backend the CPU probe picked,
the effective backend after environment overrides, and the CPU features
the probe looks at.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.log.Debug("resolving backend", slog.String("env", vec.EnvBackend))
			return printBackends(cmd.OutOrStdout())
		},
	}
}

func printBackends(w io.Writer) error {
	res := vec.Resolved()
	ew := &errWriter{w: w}

	ew.printf("platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	ew.printf("detected:  %s\n", res.Detected)
	ew.printf("effective: %s", res.Backend)
	if res.Overridden {
		ew.printf(" (overridden by %s or %s)", vec.EnvBackend, vec.EnvNoSIMD)
	}
	ew.printf("\n")

	ew.printf("available:\n")
	for _, b := range vec.Available() {
		lanes := "1 lane"
		if rb := b.RegisterBytes(); rb > 0 {
			lanes = fmt.Sprintf("%d/%d/%d lanes (%s/%s/%s)",
				rb*8/lane.Eight.Bits(), rb*8/lane.Sixteen.Bits(), rb*8/lane.ThirtyTwo.Bits(),
				lane.Eight, lane.Sixteen, lane.ThirtyTwo)
		}
		ew.printf("  %-7s %s per step\n", b, lanes)
	}

	ew.printf("cpu features:\n")
	for _, f := range cpuFeatures() {
		ew.printf("  %-6s %v\n", f.name, f.has)
	}
	return ew.err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

type feature struct {
	name string
	has  bool
}

func cpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx2", cpu.X86.HasAVX2},
			{"popcnt", cpu.X86.HasPOPCNT},
		}
	case "arm64":
		return []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		}
	default:
		return nil
	}
}
