// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/touchline/internal/adapters/players"
	repository "github.com/okian/touchline/internal/adapters/repository"
	"github.com/okian/touchline/internal/domain/budget"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/pricing"
	"github.com/okian/touchline/internal/domain/roster"
	"github.com/okian/touchline/pkg/logger"
	"github.com/okian/touchline/pkg/metrics"
)

// Service implements the API dependencies for the squad builder.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   repository.Store
	config  repository.SettingsStore
	catalog *players.Catalog

	// Configuration
	initialSettings  model.Settings
	defaultFormation string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSettings seeds the game settings applied on Start.
func WithSettings(s model.Settings) Option {
	return func(svc *Service) {
		svc.initialSettings = s
	}
}

// WithDefaultFormation sets the formation assigned to new squads.
func WithDefaultFormation(name string) Option {
	return func(svc *Service) {
		if name != "" {
			svc.defaultFormation = name
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(svc *Service) {
		if logger != nil {
			svc.logger = logger
		}
	}
}

// WithStore overrides the squad store, used by tests.
func WithStore(store repository.Store) Option {
	return func(svc *Service) {
		if store != nil {
			svc.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		initialSettings: model.DefaultSettings(),
		logger:          nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting squad builder service...")

	catalog, err := players.NewCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load player catalog: %w", err)
	}
	s.catalog = catalog
	metrics.UpdateCatalogSize(catalog.Len())

	if s.store == nil {
		mem := repository.NewMemStore(ctx,
			repository.WithSettings(s.initialSettings),
			repository.WithDefaultFormation(s.defaultFormation),
		)
		s.store = mem
		s.config = mem
	} else if cfg, ok := s.store.(repository.SettingsStore); ok {
		s.config = cfg
	} else {
		return fmt.Errorf("store does not carry settings: %w", ErrNotStarted)
	}

	s.started = true
	s.logger.Info(ctx, "squad builder service started",
		logger.Int("catalogSize", catalog.Len()),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "squad builder service stopped")
}

// CreateSquad creates a squad with the configured default formation.
func (s *Service) CreateSquad(ctx context.Context, name string) (model.Squad, error) {
	squad, err := s.store.CreateSquad(ctx, name)
	if err != nil {
		return model.Squad{}, err
	}
	s.logger.Info(ctx, "squad created",
		logger.String("squadID", squad.ID),
		logger.String("name", squad.Name),
	)
	return squad, nil
}

// GetSquad returns a squad with its roster entries.
func (s *Service) GetSquad(ctx context.Context, id string) (model.Squad, error) {
	return s.store.GetSquad(ctx, id)
}

// ListSquads returns all squads, most recently created first.
func (s *Service) ListSquads(ctx context.Context) ([]model.Squad, error) {
	return s.store.ListSquads(ctx)
}

// RenameSquad updates the squad name.
func (s *Service) RenameSquad(ctx context.Context, id, name string) error {
	return s.store.RenameSquad(ctx, id, name)
}

// DeleteSquad removes a squad, promoting a new favorite if needed.
func (s *Service) DeleteSquad(ctx context.Context, id string) error {
	if err := s.store.DeleteSquad(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "squad deleted", logger.String("squadID", id))
	return nil
}

// SetFavorite marks the squad as the favorite, exclusively.
func (s *Service) SetFavorite(ctx context.Context, id string) error {
	return s.store.SetFavorite(ctx, id)
}

// AddPlayer validates and applies a player placement. A failed
// validation surfaces as a *roster.Rejection through the error return.
func (s *Service) AddPlayer(ctx context.Context, squadID string, playerID int, tier model.Tier, slotIndex int) (model.RosterEntry, error) {
	player, ok := s.catalog.Get(playerID)
	if !ok {
		metrics.RecordMutation("add_player", "error")
		return model.RosterEntry{}, fmt.Errorf("%w: %d", players.ErrPlayerNotFound, playerID)
	}

	entries, err := s.store.Entries(ctx, squadID)
	if err != nil {
		metrics.RecordMutation("add_player", "error")
		return model.RosterEntry{}, err
	}

	settings := s.config.Settings(ctx)
	entry, rej := roster.ValidateAdd(entries, s.catalog.Get, tier, slotIndex, player, settings.Curve, settings.Budgets)
	if rej != nil {
		metrics.RecordMutation("add_player", "rejected")
		metrics.RecordRejection(string(rej.Kind))
		s.logger.Debug(ctx, "player placement rejected",
			logger.String("squadID", squadID),
			logger.Int("playerID", playerID),
			logger.String("kind", string(rej.Kind)),
		)
		return model.RosterEntry{}, rej
	}

	plan := roster.Plan{Insert: []model.RosterEntry{entry}}
	if err := s.store.Apply(ctx, squadID, plan); err != nil {
		metrics.RecordStoreError()
		metrics.RecordMutation("add_player", "error")
		return model.RosterEntry{}, err
	}

	metrics.RecordMutation("add_player", "applied")
	// Re-read to return the entry with its store-assigned id.
	applied, err := s.store.Entries(ctx, squadID)
	if err != nil {
		return model.RosterEntry{}, err
	}
	for _, e := range applied {
		if e.PlayerID == playerID {
			return e, nil
		}
	}
	return entry, nil
}

// RemoveEntry removes a roster entry from the squad.
func (s *Service) RemoveEntry(ctx context.Context, squadID, entryID string) error {
	plan := roster.Plan{Remove: []string{entryID}}
	if err := s.store.Apply(ctx, squadID, plan); err != nil {
		metrics.RecordMutation("remove_entry", "error")
		return err
	}
	metrics.RecordMutation("remove_entry", "applied")
	return nil
}

// SwapSlots exchanges two First-XI slots on the squad.
func (s *Service) SwapSlots(ctx context.Context, squadID string, fromIndex, toIndex int) error {
	entries, err := s.store.Entries(ctx, squadID)
	if err != nil {
		metrics.RecordMutation("swap", "error")
		return err
	}

	plan, rej := roster.Swap(entries, fromIndex, toIndex)
	if rej != nil {
		metrics.RecordMutation("swap", "rejected")
		metrics.RecordRejection(string(rej.Kind))
		return rej
	}
	if plan.Empty() {
		metrics.RecordMutation("swap", "applied")
		return nil
	}

	if err := s.store.Apply(ctx, squadID, plan); err != nil {
		metrics.RecordStoreError()
		metrics.RecordMutation("swap", "error")
		return err
	}
	metrics.RecordMutation("swap", "applied")
	return nil
}

// ChangeFormation switches the squad to a new formation, reassigning
// any First-XI occupants onto the new layout.
func (s *Service) ChangeFormation(ctx context.Context, squadID, target string) error {
	entries, err := s.store.Entries(ctx, squadID)
	if err != nil {
		metrics.RecordMutation("change_formation", "error")
		return err
	}

	plan, rej := roster.ChangeFormation(entries, s.catalog.Get, target)
	if rej != nil {
		metrics.RecordMutation("change_formation", "rejected")
		metrics.RecordRejection(string(rej.Kind))
		return rej
	}

	if err := s.store.Apply(ctx, squadID, plan); err != nil {
		metrics.RecordStoreError()
		metrics.RecordMutation("change_formation", "error")
		return err
	}

	metrics.RecordMutation("change_formation", "applied")
	metrics.RecordFormationChange()
	s.logger.Info(ctx, "formation changed",
		logger.String("squadID", squadID),
		logger.String("formation", target),
	)
	return nil
}

// BudgetSummary computes per-tier and total spending for the squad
// against the current settings.
func (s *Service) BudgetSummary(ctx context.Context, squadID string) (budget.Summary, error) {
	entries, err := s.store.Entries(ctx, squadID)
	if err != nil {
		return budget.Summary{}, err
	}
	settings := s.config.Settings(ctx)
	return budget.Summarize(entries, s.catalog.Get, settings.Curve, settings.Budgets), nil
}

// SearchPlayers queries the player catalog.
func (s *Service) SearchPlayers(ctx context.Context, q players.Query) players.Result {
	return s.catalog.Search(ctx, q)
}

// PlayerFilters returns the distinct filterable catalog values.
func (s *Service) PlayerFilters(ctx context.Context) players.FilterOptions {
	return s.catalog.Filters(ctx)
}

// GetPlayer returns a catalog player by id.
func (s *Service) GetPlayer(ctx context.Context, id int) (model.Player, error) {
	player, ok := s.catalog.Get(id)
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %d", players.ErrPlayerNotFound, id)
	}
	return player, nil
}

// Price computes the cost of a player rating under the current curve.
func (s *Service) Price(ctx context.Context, rating int) int64 {
	metrics.RecordPricingCall()
	return pricing.Cost(rating, s.config.Settings(ctx).Curve)
}

// Settings returns the current game settings.
func (s *Service) Settings(ctx context.Context) model.Settings {
	return s.config.Settings(ctx)
}

// UpdateSettings validates and replaces the game settings. Rejected
// settings never reach the store.
func (s *Service) UpdateSettings(ctx context.Context, settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.config.UpdateSettings(ctx, settings); err != nil {
		metrics.RecordStoreError()
		return err
	}
	metrics.RecordSettingsEdit()
	s.logger.Info(ctx, "settings updated",
		logger.Int64("firstXIBudget", settings.Budgets.FirstXI),
		logger.Int64("costBase", settings.Curve.Base),
		logger.Float64("costExponent", settings.Curve.Exponent),
	)
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.started {
		squads := s.store.Count(ctx)
		stats["totalSquads"] = squads
		stats["catalogSize"] = s.catalog.Len()
		metrics.UpdateTotalSquads(squads)
	}
	return stats
}
