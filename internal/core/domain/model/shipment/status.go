package shipment

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> InTransit ──> Completed
//	   │            │              │
//	   └────────────┴──────────────┴──────> Cancelled
//
// Completed and Cancelled are terminal: no outgoing transitions exist.
//
// Transitions are defined exclusively by an explicit adjacency table keyed
// by named states. The numeric values of the constants carry no workflow
// meaning and must never be compared to decide legality.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipment is first registered.
	Pending

	// Processing indicates the shipment is being prepared for dispatch.
	Processing

	// InTransit indicates the shipment has left the warehouse and is on
	// its way to the destination address.
	InTransit

	// Completed indicates the shipment was delivered. Terminal.
	Completed

	// Cancelled indicates the shipment was called off. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		InTransit:  "InTransit",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		InTransit:  "InTransit",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getAllowedTransitions returns the adjacency table of the status state
// machine. A requested transition is legal only when the target appears in
// the set keyed by the current status. Requesting the current status again
// is not in any set, so self-transitions are rejected.
func getAllowedTransitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending:    {Processing: true, Cancelled: true},
		Processing: {InTransit: true, Cancelled: true},
		InTransit:  {Completed: true, Cancelled: true},
		Completed:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, InTransit, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string label, case-insensitively.
//
// Returns a validation error for unrecognized or empty values, so callers
// can reject malformed input before touching storage or the state machine.
//
// Example:
//
//	status, err := shipment.StatusFromString("inTransit")
//	if err != nil {
//	    // "inTransit" would parse fine; "Bogus" would not
//	}
func StatusFromString(value string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if strings.EqualFold(label, value) {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// CanTransitionTo reports whether moving from the current status to next is
// allowed by the adjacency table.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := getAllowedTransitions()[s]
	return ok && allowed[next]
}

// IsTerminal reports whether the status has no outgoing transitions.
// Completed and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	allowed, ok := getAllowedTransitions()[s]
	return ok && len(allowed) == 0
}

// TransitionTo validates the transition against the adjacency table and
// returns the new status.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (0, *InvalidTransitionError) naming both states otherwise
//
// This method is used by Shipment.TransitionTo to enforce the state machine.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, NewInvalidTransitionError(s, next)
	}

	return next, nil
}
