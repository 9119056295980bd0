package repository

import (
	"time"

	"github.com/okian/touchline/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithSettings seeds the store with game settings other than the
// defaults.
func WithSettings(s model.Settings) Option {
	return func(m *MemStore) {
		m.settings = s
	}
}

// WithDefaultFormation sets the formation assigned to new squads.
func WithDefaultFormation(name string) Option {
	return func(m *MemStore) {
		if name != "" {
			m.defaultFormation = name
		}
	}
}

// WithClock overrides the store's time source, used by tests to pin
// squad creation times.
func WithClock(now func() time.Time) Option {
	return func(m *MemStore) {
		if now != nil {
			m.now = now
		}
	}
}
