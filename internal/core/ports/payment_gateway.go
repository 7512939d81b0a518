package ports

import (
	"context"

	"mangoshop/internal/core/domain/model/kernel"
)

// Card holds the payment card details forwarded to the gateway. They are never stored.
type Card struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
	Holder   string
}

// ChargeRequest asks the gateway to capture Amount for the order identified by Reference.
type ChargeRequest struct {
	Reference   string
	Amount      kernel.Money
	Currency    string
	Description string
	Card        Card
}

// ChargeResult is the gateway's answer. A declined charge is a result, not an error.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	Message       string
}

// PaymentGateway captures order payments.
type PaymentGateway interface {
	// Charge returns an error only when the gateway could not be reached or answered
	// with something unusable.
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
