// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// Tier identifies a roster partition with its own capacity and budget.
type Tier string

// Roster tiers.
const (
	TierFirstXI  Tier = "FIRST_XI"
	TierBench    Tier = "BENCH"
	TierReserves Tier = "RESERVES"
)

// Slot capacities per tier.
const (
	FirstXISlots  = 11
	BenchSlots    = 7
	ReservesSlots = 5
)

// SlotCount returns the number of addressable slots in the tier,
// or 0 for an unknown tier.
func (t Tier) SlotCount() int {
	switch t {
	case TierFirstXI:
		return FirstXISlots
	case TierBench:
		return BenchSlots
	case TierReserves:
		return ReservesSlots
	default:
		return 0
	}
}

// Valid reports whether t names a known tier.
func (t Tier) Valid() bool {
	return t.SlotCount() > 0
}

// Player is immutable reference data owned by the player catalog.
type Player struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Overall              int      `json:"overall"`
	Position             string   `json:"position"`
	AlternativePositions []string `json:"alternative_positions"`
	Pace                 int      `json:"pace"`
	Shooting             int      `json:"shooting"`
	Passing              int      `json:"passing"`
	Dribbling            int      `json:"dribbling"`
	Defending            int      `json:"defending"`
	Physical             int      `json:"physical"`
	Nation               string   `json:"nation"`
	League               string   `json:"league"`
	Team                 string   `json:"team"`
}

// RosterEntry associates one player with one (tier, slot index) pair
// within a squad. A player appears at most once per squad and a
// (tier, index) pair holds at most one entry.
type RosterEntry struct {
	ID        string
	PlayerID  int
	Tier      Tier
	SlotIndex int
}

// Squad is a named roster owned by a user.
type Squad struct {
	ID        string
	Name      string
	Formation string
	Favorite  bool
	CreatedAt time.Time
	Entries   []RosterEntry
}

// CostCurve holds the parameters of the exponential pricing function.
type CostCurve struct {
	Base       int64   `koanf:"base" json:"base"`
	Exponent   float64 `koanf:"exponent" json:"exponent"`
	BaseRating int     `koanf:"base_rating" json:"base_rating"`
}

// TierBudgets holds the independent monetary ceilings per tier.
type TierBudgets struct {
	FirstXI  int64 `koanf:"first_xi" json:"first_xi"`
	Bench    int64 `koanf:"bench" json:"bench"`
	Reserves int64 `koanf:"reserves" json:"reserves"`
}

// Budget returns the ceiling for the given tier.
func (b TierBudgets) Budget(t Tier) int64 {
	switch t {
	case TierFirstXI:
		return b.FirstXI
	case TierBench:
		return b.Bench
	case TierReserves:
		return b.Reserves
	default:
		return 0
	}
}

// Total returns the sum of all tier ceilings.
func (b TierBudgets) Total() int64 {
	return b.FirstXI + b.Bench + b.Reserves
}

// Settings is the game-wide configuration singleton: tier budgets plus
// the cost curve. Mutated only through the settings update operation.
type Settings struct {
	Budgets TierBudgets `koanf:"budgets" json:"budgets"`
	Curve   CostCurve   `koanf:"cost_curve" json:"cost_curve"`
}

// Validate reports whether the settings can price and cap a roster.
// Every budget must be positive and the curve must grow with rating.
func (s Settings) Validate() error {
	if s.Budgets.FirstXI <= 0 || s.Budgets.Bench <= 0 || s.Budgets.Reserves <= 0 {
		return fmt.Errorf("%w: tier budgets must be positive", ErrInvalidSettings)
	}
	if s.Curve.Base <= 0 {
		return fmt.Errorf("%w: cost base must be positive", ErrInvalidSettings)
	}
	if s.Curve.Exponent <= 1 {
		return fmt.Errorf("%w: cost exponent must be greater than 1", ErrInvalidSettings)
	}
	if s.Curve.BaseRating <= 0 {
		return fmt.Errorf("%w: base rating must be positive", ErrInvalidSettings)
	}
	return nil
}

// DefaultSettings returns the seeded game settings.
func DefaultSettings() Settings {
	return Settings{
		Budgets: TierBudgets{
			FirstXI:  1_000_000_000,
			Bench:    400_000_000,
			Reserves: 100_000_000,
		},
		Curve: CostCurve{
			Base:       13_723_086,
			Exponent:   1.23,
			BaseRating: 76,
		},
	}
}
