package model

import "errors"

// Sentinel kinds for settings validation errors.
var (
	ErrInvalidSettings = errors.New("invalid settings")
)
