package shipment

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition indicates that a requested status change is
// not reachable from the shipment's current status. Concrete
// InvalidTransitionError values wrap this sentinel so callers can classify
// the failure with errors.Is.
var ErrInvalidStatusTransition = errors.New("status transition is invalid")

// InvalidTransitionError reports an illegal status transition, naming both
// the current and the requested status so operators can see exactly which
// edge of the state machine was refused.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair of states.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s to %s is not allowed", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
