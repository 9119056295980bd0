package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrSquadNotFound = errors.New("squad not found")
	ErrEntryNotFound = errors.New("roster entry not found")
	ErrEmptyName     = errors.New("squad name must not be empty")
)
