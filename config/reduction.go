package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ReductionConfig defines configuration for a composed reducer.
//
// Example JSON:
//
//	{
//	  "name": "app",
//	  "observer": "slog",
//	  "path_separator": ".",
//	  "tracing": false
//	}
type ReductionConfig struct {
	// Name identifies the composed reducer in events and spans
	Name string `json:"name"`

	// Observer names the registered observer receiving diagnostics ("noop", "slog", "otel")
	Observer string `json:"observer"`

	// PathSeparator joins mount path segments in diagnostic messages
	PathSeparator string `json:"path_separator"`

	// TracingNil controls whether each dispatch opens a span (nil = default true)
	TracingNil *bool `json:"tracing,omitempty"`
}

// DefaultReductionConfig returns defaults for a composed reducer.
//
// Default values:
//   - Observer: "slog" for structured logging of reducer faults
//   - PathSeparator: "."
//   - Tracing: enabled (spans are no-ops unless a tracer provider is installed)
func DefaultReductionConfig(name string) ReductionConfig {
	return ReductionConfig{
		Name:          name,
		Observer:      "slog",
		PathSeparator: ".",
	}
}

// Tracing reports whether dispatch spans are enabled.
func (c *ReductionConfig) Tracing() bool {
	if c.TracingNil == nil {
		return true
	}
	return *c.TracingNil
}

func (c *ReductionConfig) Merge(source *ReductionConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.PathSeparator != "" {
		c.PathSeparator = source.PathSeparator
	}

	if source.TracingNil != nil {
		c.TracingNil = source.TracingNil
	}
}

type envOverrides struct {
	Name          string `env:"REDUCTION_NAME"`
	Observer      string `env:"REDUCTION_OBSERVER"`
	PathSeparator string `env:"REDUCTION_PATH_SEPARATOR"`
	Tracing       *bool  `env:"REDUCTION_TRACING"`
}

// ApplyEnv merges REDUCTION_* environment variables over cfg.
func ApplyEnv(cfg *ReductionConfig) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	cfg.Merge(&ReductionConfig{
		Name:          overrides.Name,
		Observer:      overrides.Observer,
		PathSeparator: overrides.PathSeparator,
		TracingNil:    overrides.Tracing,
	})
	return nil
}

// LoadConfig reads a JSON config file, merges it over defaults, then applies
// environment overrides.
func LoadConfig(filename string) (*ReductionConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded ReductionConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := DefaultReductionConfig("")
	cfg.Merge(&loaded)

	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
