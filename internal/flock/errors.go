package flock

import "errors"

var (
	// ErrInvalidViewport indicates a viewport with a zero or negative side.
	ErrInvalidViewport = errors.New("flock: invalid viewport (width and height must be positive)")

	// ErrEmptyFlock indicates a population size below one.
	ErrEmptyFlock = errors.New("flock: population must be positive")
)
