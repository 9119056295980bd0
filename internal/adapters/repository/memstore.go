package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/touchline/internal/domain/formation"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/roster"
	"github.com/okian/touchline/pkg/metrics"
)

// tierOrder fixes the sort order of Entries snapshots.
var tierOrder = map[model.Tier]int{
	model.TierFirstXI:  0,
	model.TierBench:    1,
	model.TierReserves: 2,
}

// squadRecord is the store's internal squad state. Entries are keyed
// by entry id for O(1) plan application.
type squadRecord struct {
	squad   model.Squad
	entries map[string]model.RosterEntry
}

// MemStore implements Store and SettingsStore with in-process state.
// A single RWMutex guards all squads, which makes Apply trivially
// atomic with respect to concurrent readers.
type MemStore struct {
	mu               sync.RWMutex
	squads           map[string]*squadRecord
	settings         model.Settings
	defaultFormation string
	now              func() time.Time
}

// NewMemStore creates an empty in-memory store with configuration
// options. Context is accepted first to satisfy the project-wide
// convention; it is reserved for future use.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		squads:           make(map[string]*squadRecord),
		settings:         model.DefaultSettings(),
		defaultFormation: formation.DefaultName,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSquad creates a squad with the default formation. The store's
// first squad becomes the favorite.
func (s *MemStore) CreateSquad(ctx context.Context, name string) (model.Squad, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Squad{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	squad := model.Squad{
		ID:        uuid.NewString(),
		Name:      name,
		Formation: s.defaultFormation,
		Favorite:  len(s.squads) == 0,
		CreatedAt: s.now(),
	}
	s.squads[squad.ID] = &squadRecord{
		squad:   squad,
		entries: make(map[string]model.RosterEntry),
	}
	metrics.UpdateTotalSquads(len(s.squads))
	return squad, nil
}

// GetSquad returns a squad with its entries.
func (s *MemStore) GetSquad(ctx context.Context, id string) (model.Squad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.squads[id]
	if !ok {
		return model.Squad{}, fmt.Errorf("%w: %s", ErrSquadNotFound, id)
	}
	squad := rec.squad
	squad.Entries = sortedEntries(rec.entries)
	return squad, nil
}

// ListSquads returns all squads, most recently created first.
func (s *MemStore) ListSquads(ctx context.Context) ([]model.Squad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	squads := make([]model.Squad, 0, len(s.squads))
	for _, rec := range s.squads {
		squad := rec.squad
		squad.Entries = sortedEntries(rec.entries)
		squads = append(squads, squad)
	}
	sort.Slice(squads, func(i, j int) bool {
		if squads[i].CreatedAt.Equal(squads[j].CreatedAt) {
			return squads[i].ID < squads[j].ID
		}
		return squads[i].CreatedAt.After(squads[j].CreatedAt)
	})
	return squads, nil
}

// RenameSquad updates the squad name.
func (s *MemStore) RenameSquad(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.squads[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSquadNotFound, id)
	}
	rec.squad.Name = name
	return nil
}

// DeleteSquad removes a squad and promotes a new favorite if needed.
func (s *MemStore) DeleteSquad(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.squads[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSquadNotFound, id)
	}
	wasFavorite := rec.squad.Favorite
	delete(s.squads, id)

	if wasFavorite {
		var next *squadRecord
		for _, r := range s.squads {
			if next == nil || r.squad.CreatedAt.After(next.squad.CreatedAt) {
				next = r
			}
		}
		if next != nil {
			next.squad.Favorite = true
		}
	}
	metrics.UpdateTotalSquads(len(s.squads))
	return nil
}

// SetFavorite marks the squad as the favorite, exclusively.
func (s *MemStore) SetFavorite(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.squads[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSquadNotFound, id)
	}
	for _, r := range s.squads {
		r.squad.Favorite = false
	}
	rec.squad.Favorite = true
	return nil
}

// Entries returns a snapshot of the squad's roster entries.
func (s *MemStore) Entries(ctx context.Context, squadID string) ([]model.RosterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.squads[squadID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSquadNotFound, squadID)
	}
	return sortedEntries(rec.entries), nil
}

// Apply commits a mutation plan atomically. The plan is validated in
// full before any change, so a failing plan leaves the squad untouched
// and no concurrent reader ever observes a partial application.
func (s *MemStore) Apply(ctx context.Context, squadID string, plan roster.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.squads[squadID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSquadNotFound, squadID)
	}

	for _, id := range plan.Remove {
		if _, ok := rec.entries[id]; !ok {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
	}
	for _, mv := range plan.Move {
		if _, ok := rec.entries[mv.EntryID]; !ok {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, mv.EntryID)
		}
	}

	for _, id := range plan.Remove {
		delete(rec.entries, id)
	}
	for _, mv := range plan.Move {
		e := rec.entries[mv.EntryID]
		e.SlotIndex = mv.SlotIndex
		rec.entries[mv.EntryID] = e
	}
	for _, e := range plan.Insert {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		rec.entries[e.ID] = e
	}
	if plan.SetFormation != "" {
		rec.squad.Formation = plan.SetFormation
	}
	return nil
}

// Count returns the number of squads tracked by the store.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.squads)
}

// Settings returns the current game settings.
func (s *MemStore) Settings(ctx context.Context) model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the game settings.
func (s *MemStore) UpdateSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

// sortedEntries copies the entry map into a slice ordered by tier then
// slot index. Must be called with at least a read lock held.
func sortedEntries(entries map[string]model.RosterEntry) []model.RosterEntry {
	out := make([]model.RosterEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if tierOrder[out[i].Tier] != tierOrder[out[j].Tier] {
			return tierOrder[out[i].Tier] < tierOrder[out[j].Tier]
		}
		return out[i].SlotIndex < out[j].SlotIndex
	})
	return out
}
