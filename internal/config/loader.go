package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/touchline/internal/domain/formation"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if TOUCHLINE_CONFIG is set
//  3. env (prefix TOUCHLINE_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TOUCHLINE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TOUCHLINE_ADDR, TOUCHLINE_COST_BASE, ...
	// Map env keys like TOUCHLINE_COST_BASE -> cost_base (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TOUCHLINE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "touchline_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.FirstXIBudget <= 0 || c.BenchBudget <= 0 || c.ReservesBudget <= 0 {
		return fmt.Errorf("%w: tier budgets must be positive", ErrInvalidConfig)
	}
	if c.CostBase <= 0 {
		return fmt.Errorf("%w: cost_base must be positive", ErrInvalidConfig)
	}
	if c.CostExponent <= 1 {
		return fmt.Errorf("%w: cost_exponent must be greater than 1", ErrInvalidConfig)
	}
	if c.CostBaseRating <= 0 {
		return fmt.Errorf("%w: cost_base_rating must be positive", ErrInvalidConfig)
	}
	if !formation.Known(c.DefaultFormation) {
		return fmt.Errorf("%w: unknown default formation %q", ErrInvalidConfig, c.DefaultFormation)
	}
	return nil
}
