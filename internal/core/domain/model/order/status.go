package order

import (
	"errors"
	"fmt"

	"mangoshop/internal/pkg/errs"
)

// ErrStatusTransitionNotAllowed is wrapped by every rejected status change.
var ErrStatusTransitionNotAllowed = errors.New("order status transition is not allowed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Processing ──> Shipped ──> Delivered
//	    │
//	    └────────> Cancelled
//
// Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status of a paid order waiting to be shipped.
	// It is the only status from which an order can be cancelled.
	Processing

	// Shipped means the boxes left the warehouse.
	Shipped

	// Delivered means the customer received the boxes. This is a final state.
	Delivered

	// Cancelled means the order was withdrawn before shipping. This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidTransitions lists, for every status, the statuses it may move to.
func getValidTransitions() map[Status][]Status {
	//nolint:exhaustive // final and unknown statuses have no transitions
	return map[Status][]Status{
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
	}
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus maps a lower-case wire name such as "shipped" to a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Processing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	for _, status := range AllStatuses() {
		if s == status {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether s may move to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getValidTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the move is allowed.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, error) wrapping ErrStatusTransitionNotAllowed otherwise
//
// Example:
//
//	next, err := order.Processing.TransitionTo(order.Shipped)
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, s, target)
	}
	return target, nil
}
