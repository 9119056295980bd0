// Package budget aggregates roster costs into per-tier and total
// spend/remaining/percentage figures. Pure aggregation: the ledger is
// recomputed on demand from the roster snapshot and never cached.
package budget

import (
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/pricing"
)

// Info describes spending against a single ceiling.
type Info struct {
	Spent      int64   `json:"spent"`
	Budget     int64   `json:"budget"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// Summary holds the ledger for every tier plus the total over the
// union of all entries against the summed ceilings.
type Summary struct {
	FirstXI  Info `json:"first_xi"`
	Bench    Info `json:"bench"`
	Reserves Info `json:"reserves"`
	Total    Info `json:"total"`
}

// ByTier returns the tier's ledger info, or the zero Info for an
// unknown tier.
func (s Summary) ByTier(t model.Tier) Info {
	switch t {
	case model.TierFirstXI:
		return s.FirstXI
	case model.TierBench:
		return s.Bench
	case model.TierReserves:
		return s.Reserves
	default:
		return Info{}
	}
}

// PlayerLookup resolves a player id to its reference record. Entries
// whose player cannot be resolved contribute nothing to the ledger.
type PlayerLookup func(playerID int) (model.Player, bool)

// New derives spend/remaining/percentage from a spent amount and a
// ceiling. Remaining may go negative only if an invariant was bypassed;
// the ledger does not clamp. Percentage is zero for a non-positive
// ceiling to avoid division by zero.
func New(spent, ceiling int64) Info {
	info := Info{
		Spent:     spent,
		Budget:    ceiling,
		Remaining: ceiling - spent,
	}
	if ceiling > 0 {
		info.Percentage = float64(spent) / float64(ceiling) * 100
	}
	return info
}

// Summarize prices every roster entry on the cost curve and aggregates
// the result per tier and in total.
func Summarize(entries []model.RosterEntry, lookup PlayerLookup, curve model.CostCurve, budgets model.TierBudgets) Summary {
	var firstXI, bench, reserves int64

	for _, e := range entries {
		player, ok := lookup(e.PlayerID)
		if !ok {
			continue
		}
		cost := pricing.Cost(player.Overall, curve)
		switch e.Tier {
		case model.TierFirstXI:
			firstXI += cost
		case model.TierBench:
			bench += cost
		case model.TierReserves:
			reserves += cost
		}
	}

	return Summary{
		FirstXI:  New(firstXI, budgets.FirstXI),
		Bench:    New(bench, budgets.Bench),
		Reserves: New(reserves, budgets.Reserves),
		Total:    New(firstXI+bench+reserves, budgets.Total()),
	}
}

// TierSpent totals the cost of the entries in a single tier.
func TierSpent(entries []model.RosterEntry, tier model.Tier, lookup PlayerLookup, curve model.CostCurve) int64 {
	var spent int64
	for _, e := range entries {
		if e.Tier != tier {
			continue
		}
		if player, ok := lookup(e.PlayerID); ok {
			spent += pricing.Cost(player.Overall, curve)
		}
	}
	return spent
}
