package seq

import "errors"

// Errors for sequence removal.
var (
	// ErrEmptyPattern is returned when a removal pattern has no elements.
	// Skipping a zero-length pattern would never advance.
	ErrEmptyPattern = errors.New("seq: removal pattern is empty")
)
