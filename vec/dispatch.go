package vec

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// Environment variables read once, on first call to Resolve.
const (
	// EnvBackend pins the backend by name ("scalar", "narrow", "wide").
	// An unknown or unavailable name is ignored with a warning.
	EnvBackend = "EDITDIST_BACKEND"

	// EnvNoSIMD forces the Scalar backend when set to a true value.
	// Any non-empty value that does not parse as a bool counts as true.
	EnvNoSIMD = "EDITDIST_NO_SIMD"
)

// Resolution describes how the process-wide backend was chosen.
type Resolution struct {
	// Backend is the backend every engine uses by default.
	Backend Backend
	// Detected is the backend the CPU probe selected.
	Detected Backend
	// Overridden is true when an environment variable changed the choice.
	Overridden bool
}

// resolved is published exactly once; concurrent first callers block until the
// probe finishes and then all observe the same value.
var resolved = sync.OnceValue(func() Resolution {
	return resolveFrom(os.Getenv, detectBackend(), slog.Default())
})

// Resolve returns the process-wide backend.
func Resolve() Backend {
	return resolved().Backend
}

// Resolved returns the full resolution record (for diagnostics).
func Resolved() Resolution {
	return resolved()
}

// resolveFrom applies environment overrides on top of the probed backend.
func resolveFrom(getenv func(string) string, detected Backend, log *slog.Logger) Resolution {
	res := Resolution{Backend: detected, Detected: detected}

	if envTrue(getenv(EnvNoSIMD)) {
		res.Backend = Scalar
		res.Overridden = detected != Scalar
		return res
	}

	name := getenv(EnvBackend)
	if name == "" {
		return res
	}
	b, ok := ParseBackend(name)
	if !ok {
		log.Warn("ignoring unknown backend override",
			slog.String("env", EnvBackend), slog.String("value", name),
			slog.String("backend", detected.String()))
		return res
	}
	if !IsAvailable(b) {
		log.Warn("ignoring unavailable backend override",
			slog.String("env", EnvBackend), slog.String("value", name),
			slog.String("backend", detected.String()))
		return res
	}
	res.Backend = b
	res.Overridden = b != detected
	return res
}

func envTrue(val string) bool {
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
