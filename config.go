package editdist

import (
	"github.com/coregx/editdist/levenshtein"
	"github.com/coregx/editdist/search"
	"github.com/coregx/editdist/vec"
)

// Config controls how an Engine computes distances and runs searches.
//
// Example:
//
//	cfg := editdist.DefaultConfig()
//	cfg.Backend = "scalar" // pin the portable backend
//	eng, err := editdist.NewEngine(cfg)
type Config struct {
	// Backend pins the vector backend by name ("scalar", "narrow", "wide").
	// Empty or "auto" uses the process-wide backend.
	// Default: "auto"
	Backend string

	// Strategy selects the Levenshtein algorithm.
	// Default: levenshtein.Auto
	Strategy levenshtein.Strategy

	// EnablePrefilter enables the pigeonhole prefilter for LevenshteinSearch.
	// Default: true
	EnablePrefilter bool

	// MinPieceLen is the shortest pattern piece the prefilter accepts.
	// Default: 4
	MinPieceLen int

	// MyersThreshold is the shorter-input length above which the Auto
	// strategy switches to the bit-vector algorithm.
	// Default: 64
	MyersThreshold int
}

// DefaultConfig returns a configuration using the process-wide backend and
// automatic algorithm selection.
func DefaultConfig() Config {
	return Config{
		Backend:         "auto",
		Strategy:        levenshtein.Auto,
		EnablePrefilter: true,
		MinPieceLen:     search.DefaultMinPieceLen,
		MyersThreshold:  levenshtein.DefaultMyersThreshold,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Backend: "", "auto" or a compiled-in backend name
//   - Strategy: Auto, Diagonal, BitVector, Exponential
//   - MinPieceLen: 1 to 1,024 (only checked when EnablePrefilter is set)
//   - MyersThreshold: 1 to 1,000,000
func (c Config) Validate() error {
	if _, err := c.backend(); err != nil {
		return err
	}

	if c.Strategy > levenshtein.Exponential {
		return &ConfigError{
			Field:   "Strategy",
			Message: "unknown strategy " + c.Strategy.String(),
		}
	}

	if c.EnablePrefilter {
		if c.MinPieceLen < 1 || c.MinPieceLen > 1_024 {
			return &ConfigError{
				Field:   "MinPieceLen",
				Message: "must be between 1 and 1,024",
			}
		}
	}

	if c.MyersThreshold < 1 || c.MyersThreshold > 1_000_000 {
		return &ConfigError{
			Field:   "MyersThreshold",
			Message: "must be between 1 and 1,000,000",
		}
	}

	return nil
}

func (c Config) backend() (vec.Backend, error) {
	switch c.Backend {
	case "", "auto":
		return vec.Resolve(), nil
	}
	b, ok := vec.ParseBackend(c.Backend)
	if !ok {
		return 0, &ConfigError{
			Field:   "Backend",
			Message: "unknown backend " + `"` + c.Backend + `"`,
		}
	}
	if !vec.IsAvailable(b) {
		return 0, &ConfigError{
			Field:   "Backend",
			Message: "backend " + b.String() + " is not compiled in",
		}
	}
	return b, nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "editdist: invalid config: " + e.Field + ": " + e.Message
}
