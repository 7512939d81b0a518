package commands

import "errors"

var (
	// ErrOrderRejected marks an order refused by the delivery rules or the destination checks.
	ErrOrderRejected = errors.New("order rejected")

	// ErrPaymentDeclined marks an order whose charge was declined by the payment gateway.
	ErrPaymentDeclined = errors.New("payment declined")
)

// RejectionError carries the customer facing reason an order was refused.
// It unwraps to ErrOrderRejected or ErrPaymentDeclined.
type RejectionError struct {
	Reason string
	kind   error
}

// NewRejectionError refuses an order for reason.
func NewRejectionError(reason string) *RejectionError {
	return &RejectionError{Reason: reason, kind: ErrOrderRejected}
}

// NewPaymentDeclinedError reports a charge the gateway declined with reason.
func NewPaymentDeclinedError(reason string) *RejectionError {
	return &RejectionError{Reason: reason, kind: ErrPaymentDeclined}
}

func (e *RejectionError) Error() string {
	return e.kind.Error() + ": " + e.Reason
}

func (e *RejectionError) Unwrap() error {
	return e.kind
}
