package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	// ErrCorruptSnapshot marks a roster snapshot that violates the
	// structural invariants before an operation starts. This is a
	// defect in the calling layer, not a recoverable rejection.
	ErrCorruptSnapshot = errors.New("corrupt roster snapshot")
)
