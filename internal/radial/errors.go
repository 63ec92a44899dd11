package radial

import (
	"errors"
	"fmt"
)

// ErrCancelled is wrapped by every precondition failure. Callers treat it as a
// benign no-op: nothing was mutated.
var ErrCancelled = errors.New("radial offset cancelled")

// Precondition failures.
var (
	ErrNoVertices     = fmt.Errorf("%w: object has no vertex data", ErrCancelled)
	ErrEmptySelection = fmt.Errorf("%w: no vertices selected", ErrCancelled)
	ErrMissingPoint   = fmt.Errorf("%w: reference point not supplied", ErrCancelled)
	ErrInvalidPoint   = fmt.Errorf("%w: reference point is not finite", ErrCancelled)
)
