package players

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrSeedCorrupt    = errors.New("player seed data corrupt")
	ErrPlayerNotFound = errors.New("player not found")
)
