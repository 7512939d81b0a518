// Package payment provides PaymentGateway adapters: a JSON over HTTP client for a card
// processor and an in-process sandbox for local runs and tests.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mangoshop/internal/core/ports"
	"mangoshop/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

type chargeCardPayload struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	CVC      string `json:"cvc"`
	Holder   string `json:"holder"`
}

type chargePayload struct {
	Reference   string            `json:"reference"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description,omitempty"`
	Card        chargeCardPayload `json:"card"`
}

type chargeResponse struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// HTTPGateway posts charges to {baseURL}/charges with a bearer API key.
//
// A 2xx answer is decoded as the charge result. A 402 or 422 answer with a JSON body is a
// declined charge. Anything else is an error.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPGateway creates a gateway client. A nil client gets a 10 second timeout.
func NewHTTPGateway(baseURL, apiKey string, client *http.Client, logger *slog.Logger) (*HTTPGateway, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("payment gateway url")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		logger:  logger.With("component", "HTTPPaymentGateway"),
	}, nil
}

func (g *HTTPGateway) Charge(ctx context.Context, req ports.ChargeRequest) (ports.ChargeResult, error) {
	body, err := json.Marshal(chargePayload{
		Reference:   req.Reference,
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		Description: req.Description,
		Card: chargeCardPayload{
			Number:   req.Card.Number,
			ExpMonth: req.Card.ExpMonth,
			ExpYear:  req.Card.ExpYear,
			CVC:      req.Card.CVC,
			Holder:   req.Card.Holder,
		},
	})
	if err != nil {
		return ports.ChargeResult{}, fmt.Errorf("encode charge: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return ports.ChargeResult{}, fmt.Errorf("build charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.Reference)
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return ports.ChargeResult{}, fmt.Errorf("charge %s: %w", req.Reference, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ports.ChargeResult{}, fmt.Errorf("read charge response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300,
		resp.StatusCode == http.StatusPaymentRequired,
		resp.StatusCode == http.StatusUnprocessableEntity:
	default:
		g.logger.Error("payment gateway error", "reference", req.Reference, "status", resp.StatusCode)
		return ports.ChargeResult{}, fmt.Errorf("charge %s: gateway answered %d", req.Reference, resp.StatusCode)
	}

	var decoded chargeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ports.ChargeResult{}, fmt.Errorf("decode charge response: %w", err)
	}

	result := ports.ChargeResult{
		Approved:      decoded.Approved && resp.StatusCode < 300,
		TransactionID: decoded.TransactionID,
		Message:       decoded.Message,
	}
	if result.Approved && result.TransactionID == "" {
		return ports.ChargeResult{}, fmt.Errorf("charge %s: approved without transaction id", req.Reference)
	}

	g.logger.Info("charge processed",
		"reference", req.Reference, "approved", result.Approved, "transaction_id", result.TransactionID)
	return result, nil
}
