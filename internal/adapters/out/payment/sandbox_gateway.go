package payment

import (
	"context"
	"strings"

	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/ports"
)

// DeclinedTestCard is always declined by the sandbox.
const DeclinedTestCard = "4000000000000002"

// SandboxGateway approves every charge with a card number except DeclinedTestCard.
// It is used when no gateway URL is configured.
type SandboxGateway struct{}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{}
}

func (g *SandboxGateway) Charge(ctx context.Context, req ports.ChargeRequest) (ports.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ChargeResult{}, err
	}

	number := strings.ReplaceAll(strings.TrimSpace(req.Card.Number), " ", "")
	switch {
	case number == "":
		return ports.ChargeResult{Message: "card number is required"}, nil
	case number == DeclinedTestCard:
		return ports.ChargeResult{Message: "card declined"}, nil
	case req.Amount.IsZero():
		return ports.ChargeResult{Message: "amount must be greater than 0"}, nil
	}

	return ports.ChargeResult{
		Approved:      true,
		TransactionID: "sandbox_" + strings.ToLower(kernel.NewUUID().ShortCode(12)),
		Message:       "approved",
	}, nil
}
