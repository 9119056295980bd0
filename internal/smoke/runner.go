package smoke

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/touchline/pkg/logger"
)

// Run executes the full smoke cycle against a live service: health
// check, catalog load, concurrent squad building and a final
// invariant verification pass.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("squads", config.NumSquads),
		logger.Int("workers", config.Workers))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	client := newHTTPClient(config.Timeout)
	catalog, err := loadCatalog(ctx, client, config.BaseURL)
	if err != nil {
		return err
	}
	logger.Get().Info(ctx, "catalog loaded", logger.Int("players", len(catalog)))

	plan := planLineup(catalog)

	if err := buildSquads(ctx, config, plan, stats); err != nil {
		return fmt.Errorf("squad building failed: %w", err)
	}

	if err := verifySquads(ctx, config, stats); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Failures > 0 {
		return fmt.Errorf("smoke run finished with %d failures", stats.Failures)
	}
	return nil
}

// checkServiceHealth verifies the service responds on its health endpoint.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to reach service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service health check passed")
	return nil
}

// displayFinalStats logs the run summary.
func displayFinalStats(ctx context.Context, stats *Stats) {
	perSecond := float64(stats.PlacementsApplied)
	if stats.Duration > 0 {
		perSecond = float64(stats.PlacementsApplied) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "smoke run completed",
		logger.Int("squadsBuilt", stats.SquadsBuilt),
		logger.Int("placementsApplied", stats.PlacementsApplied),
		logger.Int("placementsRejected", stats.PlacementsRejected),
		logger.Int("swapsApplied", stats.SwapsApplied),
		logger.Int("formationChanges", stats.FormationChanges),
		logger.Int("squadsVerified", stats.SquadsVerified),
		logger.Int("failures", stats.Failures),
		logger.String("duration", stats.Duration.Round(time.Millisecond).String()),
		logger.Float64("placementsPerSecond", perSecond))
}
