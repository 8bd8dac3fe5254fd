package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single forward path and one
// absorbing failure state:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └──────┬─────┘
//	          v
//	      Cancelled
//
// No transition skips a stage and no transition moves backward. Cancelled
// is only reachable from Pending and Confirmed. Delivered and Cancelled are
// terminal. A transition to the current status is allowed and is treated by
// callers as a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by checkout. The order is
	// awaiting confirmation (typically payment verification) by the seller.
	Pending

	// Confirmed indicates the seller has accepted the order.
	Confirmed

	// Shipped indicates the order has been handed to delivery.
	Shipped

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state, reachable only before shipping.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidTransitions returns the allowed forward transitions per status.
// Self transitions are not listed; they are handled as no-ops by TransitionTo.
func getValidTransitions() map[Status]map[Status]bool {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status]map[Status]bool{
		Pending:   {Confirmed: true, Cancelled: true},
		Confirmed: {Shipped: true, Cancelled: true},
		Shipped:   {Delivered: true},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status name such as "pending" or "shipped".
// Used when reconstructing statuses from API requests.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition from s to target is
// allowed by the state machine. A transition to the current status is
// always allowed (idempotent no-op).
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	return getValidTransitions()[s][target]
}

// TransitionTo validates and performs the transition from s to target.
//
// Returns:
//   - (target, nil) on a valid transition, including s == target
//   - (0, error) if target is not a valid status or the transition is
//     not allowed from the current status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot transition from %s to %s", s, target),
		)
	}

	return target, nil
}
