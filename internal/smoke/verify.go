package smoke

import (
	"context"
	"fmt"

	"github.com/okian/touchline/pkg/logger"
)

// verifySquads re-reads every squad and checks the roster invariants
// the service promises: tier capacities, unique slots, unique players
// and a budget ledger that never exceeds its caps.
func verifySquads(ctx context.Context, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "verifying squads")

	client := newHTTPClient(config.Timeout)

	var listing struct {
		Squads []Squad `json:"squads"`
	}
	if err := client.getJSON(ctx, config.BaseURL+"/squads", &listing); err != nil {
		return fmt.Errorf("failed to list squads: %w", err)
	}

	verified := 0
	for _, squad := range listing.Squads {
		if err := verifyOneSquad(ctx, client, config.BaseURL, squad.ID); err != nil {
			logger.Get().Error(ctx, "squad verification failed",
				logger.String("squad", squad.ID),
				logger.String("name", squad.Name),
				logger.Error(err))
			stats.Failures++
			continue
		}
		verified++
	}

	stats.SquadsVerified = verified
	logger.Get().Info(ctx, "verification completed",
		logger.Int("verified", verified),
		logger.Int("total", len(listing.Squads)))

	if verified < len(listing.Squads) {
		return fmt.Errorf("%d of %d squads failed verification", len(listing.Squads)-verified, len(listing.Squads))
	}
	return nil
}

func verifyOneSquad(ctx context.Context, client *HTTPClient, baseURL, squadID string) error {
	var squad Squad
	if err := client.getJSON(ctx, baseURL+"/squads/"+squadID, &squad); err != nil {
		return err
	}
	if squad.Formation == "" {
		return fmt.Errorf("squad has no formation")
	}

	caps := map[string]int{
		"FIRST_XI": firstXISlots,
		"BENCH":    benchSlots,
		"RESERVES": reservesSlots,
	}
	counts := make(map[string]int)
	slots := make(map[string]bool)
	players := make(map[int]bool)

	for _, entry := range squad.Entries {
		max, ok := caps[entry.Tier]
		if !ok {
			return fmt.Errorf("entry %s has unknown tier %q", entry.ID, entry.Tier)
		}
		if entry.SlotIndex < 0 || entry.SlotIndex >= max {
			return fmt.Errorf("entry %s slot %d out of range for %s", entry.ID, entry.SlotIndex, entry.Tier)
		}

		slotKey := fmt.Sprintf("%s/%d", entry.Tier, entry.SlotIndex)
		if slots[slotKey] {
			return fmt.Errorf("slot %s occupied twice", slotKey)
		}
		slots[slotKey] = true

		if players[entry.PlayerID] {
			return fmt.Errorf("player %d rostered twice", entry.PlayerID)
		}
		players[entry.PlayerID] = true

		counts[entry.Tier]++
	}

	for tier, count := range counts {
		if count > caps[tier] {
			return fmt.Errorf("tier %s holds %d entries, capacity is %d", tier, count, caps[tier])
		}
	}

	var summary BudgetSummary
	if err := client.getJSON(ctx, baseURL+"/squads/"+squadID+"/budget", &summary); err != nil {
		return err
	}
	for tier, info := range map[string]BudgetInfo{
		"FIRST_XI": summary.FirstXI,
		"BENCH":    summary.Bench,
		"RESERVES": summary.Reserves,
	} {
		if info.Spent > info.Budget {
			return fmt.Errorf("tier %s overspent: %d of %d", tier, info.Spent, info.Budget)
		}
		if info.Remaining != info.Budget-info.Spent {
			return fmt.Errorf("tier %s ledger mismatch: remaining %d, expected %d", tier, info.Remaining, info.Budget-info.Spent)
		}
	}
	if summary.Total.Spent != summary.FirstXI.Spent+summary.Bench.Spent+summary.Reserves.Spent {
		return fmt.Errorf("total spent %d does not sum the tiers", summary.Total.Spent)
	}
	return nil
}
