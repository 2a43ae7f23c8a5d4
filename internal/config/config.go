// Package config loads runtime defaults for the server and CLI from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/splitkit/splitkit/pkg/types"
)

// Config holds the default chunking parameters. Per-call values supplied by
// a tool invocation or a CLI flag override these.
type Config struct {
	ChunkSize int    `env:"SPLITKIT_CHUNK_SIZE" envDefault:"1000"`
	Overlap   int    `env:"SPLITKIT_CHUNK_OVERLAP" envDefault:"200"`
	Strategy  string `env:"SPLITKIT_STRATEGY" envDefault:"recursive"`
}

// Load parses the environment and validates the resulting defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.ChunkConfig().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ChunkConfig converts the defaults into an engine configuration
func (c *Config) ChunkConfig() types.ChunkConfig {
	return types.ChunkConfig{
		ChunkSize: c.ChunkSize,
		Overlap:   c.Overlap,
		Strategy:  types.Strategy(c.Strategy),
	}
}
