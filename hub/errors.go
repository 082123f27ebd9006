package hub

import "errors"

// Sentinel errors for the hub.
var (
	// ErrEmptyName is returned when a signal name is empty.
	ErrEmptyName = errors.New("signal name cannot be empty")

	// ErrNilListener is returned when a nil listener function is provided.
	ErrNilListener = errors.New("listener cannot be nil")
)
