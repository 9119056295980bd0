package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/touchline/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.FirstXIBudget, convey.ShouldEqual, 1_000_000_000)
				convey.So(cfg.BenchBudget, convey.ShouldEqual, 400_000_000)
				convey.So(cfg.ReservesBudget, convey.ShouldEqual, 100_000_000)
				convey.So(cfg.CostBase, convey.ShouldEqual, 13_723_086)
				convey.So(cfg.CostExponent, convey.ShouldEqual, 1.23)
				convey.So(cfg.CostBaseRating, convey.ShouldEqual, 76)
				convey.So(cfg.DefaultFormation, convey.ShouldEqual, "4-3-3")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TOUCHLINE_ADDR", ":8080")
			_ = os.Setenv("TOUCHLINE_FIRST_XI_BUDGET", "2000000000")
			_ = os.Setenv("TOUCHLINE_COST_EXPONENT", "1.1")
			_ = os.Setenv("TOUCHLINE_DEFAULT_FORMATION", "4-4-2")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.FirstXIBudget, convey.ShouldEqual, 2_000_000_000)
				convey.So(cfg.CostExponent, convey.ShouldEqual, 1.1)
				convey.So(cfg.DefaultFormation, convey.ShouldEqual, "4-4-2")
				convey.So(cfg.BenchBudget, convey.ShouldEqual, 400_000_000) // default untouched
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
first_xi_budget: 1500000000
bench_budget: 500000000
cost_base: 10000000
cost_base_rating: 70
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TOUCHLINE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.FirstXIBudget, convey.ShouldEqual, 1_500_000_000)
				convey.So(cfg.BenchBudget, convey.ShouldEqual, 500_000_000)
				convey.So(cfg.CostBase, convey.ShouldEqual, 10_000_000)
				convey.So(cfg.CostBaseRating, convey.ShouldEqual, 70)
				convey.So(cfg.ReservesBudget, convey.ShouldEqual, 100_000_000) // from defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
first_xi_budget: 1500000000
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TOUCHLINE_CONFIG", tmpFile)
			_ = os.Setenv("TOUCHLINE_ADDR", ":8080") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")                // Overridden by env
				convey.So(cfg.FirstXIBudget, convey.ShouldEqual, 1_500_000_000) // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TOUCHLINE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("TOUCHLINE_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("TOUCHLINE_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigValidation(t *testing.T) {
	convey.Convey("Given config validation", t, func() {
		ctx := context.Background()

		convey.Convey("When a tier budget is zero", func() {
			_ = os.Setenv("TOUCHLINE_BENCH_BUDGET", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the cost exponent does not grow", func() {
			_ = os.Setenv("TOUCHLINE_COST_EXPONENT", "1.0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the default formation is not in the catalog", func() {
			_ = os.Setenv("TOUCHLINE_DEFAULT_FORMATION", "9-0-1")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "unknown default formation")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When settings are derived from a valid config", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldBeNil)

			settings := cfg.Settings()

			convey.Convey("Then the domain shape mirrors the config fields", func() {
				convey.So(settings.Budgets.FirstXI, convey.ShouldEqual, cfg.FirstXIBudget)
				convey.So(settings.Budgets.Bench, convey.ShouldEqual, cfg.BenchBudget)
				convey.So(settings.Budgets.Reserves, convey.ShouldEqual, cfg.ReservesBudget)
				convey.So(settings.Curve.Base, convey.ShouldEqual, cfg.CostBase)
				convey.So(settings.Curve.Exponent, convey.ShouldEqual, cfg.CostExponent)
				convey.So(settings.Curve.BaseRating, convey.ShouldEqual, cfg.CostBaseRating)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"TOUCHLINE_CONFIG",
		"TOUCHLINE_ADDR",
		"TOUCHLINE_LOG_LEVEL",
		"TOUCHLINE_FIRST_XI_BUDGET",
		"TOUCHLINE_BENCH_BUDGET",
		"TOUCHLINE_RESERVES_BUDGET",
		"TOUCHLINE_COST_BASE",
		"TOUCHLINE_COST_EXPONENT",
		"TOUCHLINE_COST_BASE_RATING",
		"TOUCHLINE_DEFAULT_FORMATION",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "touchline-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
