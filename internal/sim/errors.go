package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a non-positive tick rate or catch-up bound.
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrQuit is returned by Frame when the surface asked to stop.
	ErrQuit = errors.New("sim: quit requested")
)

// TickError wraps a failure with the tick it happened on.
type TickError struct {
	Tick int
	Err  error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Err)
}

func (e *TickError) Unwrap() error {
	return e.Err
}
