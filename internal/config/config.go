// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"

	"github.com/okian/touchline/internal/domain/model"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FirstXIBudget, BenchBudget and ReservesBudget cap spending per tier.
	FirstXIBudget  int64 `koanf:"first_xi_budget"`
	BenchBudget    int64 `koanf:"bench_budget"`
	ReservesBudget int64 `koanf:"reserves_budget"`

	// CostBase is the price of a player at the curve's base rating.
	CostBase int64 `koanf:"cost_base"`

	// CostExponent is the per-rating-point growth factor of the cost curve.
	CostExponent float64 `koanf:"cost_exponent"`

	// CostBaseRating anchors the curve; ratings below it cost less than CostBase.
	CostBaseRating int `koanf:"cost_base_rating"`

	// DefaultFormation is assigned to newly created squads.
	DefaultFormation string `koanf:"default_formation"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	defaults := model.DefaultSettings()
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		FirstXIBudget:    defaults.Budgets.FirstXI,
		BenchBudget:      defaults.Budgets.Bench,
		ReservesBudget:   defaults.Budgets.Reserves,
		CostBase:         defaults.Curve.Base,
		CostExponent:     defaults.Curve.Exponent,
		CostBaseRating:   defaults.Curve.BaseRating,
		DefaultFormation: "4-3-3",
	}
}

// Settings converts the configured pricing and budget fields into the
// domain settings shape consumed by the store.
func (c *Config) Settings() model.Settings {
	return model.Settings{
		Budgets: model.TierBudgets{
			FirstXI:  c.FirstXIBudget,
			Bench:    c.BenchBudget,
			Reserves: c.ReservesBudget,
		},
		Curve: model.CostCurve{
			Base:       c.CostBase,
			Exponent:   c.CostExponent,
			BaseRating: c.CostBaseRating,
		},
	}
}
