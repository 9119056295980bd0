// Package repository defines the squad store interface and errors.
package repository

import (
	"context"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/roster"
)

// Store provides read/write access to squads and their roster entries.
// Mutations go through Apply, which commits a roster.Plan as a single
// all-or-nothing step: a failing plan leaves the squad untouched.
type Store interface {
	// CreateSquad creates a squad with the default formation. The
	// store's first squad becomes the favorite.
	CreateSquad(ctx context.Context, name string) (model.Squad, error)

	// GetSquad returns a squad with its entries.
	// Returns ErrSquadNotFound if the id is unknown.
	GetSquad(ctx context.Context, id string) (model.Squad, error)

	// ListSquads returns all squads, most recently created first.
	ListSquads(ctx context.Context) ([]model.Squad, error)

	// RenameSquad updates the squad name.
	RenameSquad(ctx context.Context, id, name string) error

	// DeleteSquad removes a squad. If it was the favorite, the most
	// recently created remaining squad is promoted.
	DeleteSquad(ctx context.Context, id string) error

	// SetFavorite marks the squad as the favorite, exclusively.
	SetFavorite(ctx context.Context, id string) error

	// Entries returns a snapshot of the squad's roster entries ordered
	// by tier then slot index.
	Entries(ctx context.Context, squadID string) ([]model.RosterEntry, error)

	// Apply commits a mutation plan atomically. Inserted entries with
	// an empty ID receive a fresh one. Returns ErrEntryNotFound when a
	// removal or move references an unknown entry; in that case no part
	// of the plan is applied.
	Apply(ctx context.Context, squadID string, plan roster.Plan) error

	// Count returns the number of squads tracked by the store.
	Count(ctx context.Context) int
}

// SettingsStore owns the game settings singleton.
type SettingsStore interface {
	// Settings returns the current game settings.
	Settings(ctx context.Context) model.Settings

	// UpdateSettings replaces the game settings.
	UpdateSettings(ctx context.Context, s model.Settings) error
}
