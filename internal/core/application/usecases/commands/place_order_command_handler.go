package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/core/ports"
)

const chargeCurrency = "USD"

// OrderQuoter is the part of the delivery engine used to place orders.
type OrderQuoter interface {
	QuoteOrder(req services.QuoteRequest) delivery.Quote
	Airport(code string) (coverage.Airport, bool)
}

// PlaceOrderCommandHandler validates, charges and persists a new order.
//
// The request goes through the same QuoteOrder path as quote previews. Only a valid quote is
// charged, and only a charged order is stored.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(engine, gateway, uowFactory, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	var rejection *RejectionError
//	if errors.As(err, &rejection) {
//	    // rejection.Reason is safe to show to the customer
//	}
type PlaceOrderCommandHandler struct {
	quoter     OrderQuoter
	gateway    ports.PaymentGateway
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(
	quoter OrderQuoter,
	gateway ports.PaymentGateway,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return PlaceOrderCommandHandler{
		quoter:     quoter,
		gateway:    gateway,
		uowFactory: uowFactory,
		logger:     logger.With("component", "PlaceOrderCommandHandler"),
	}
}

// Handle places the order and returns it in processing status with its payment recorded.
//
// Returns a *RejectionError for an invalid quote, a missing destination field or a declined
// charge. Other errors come from the gateway or the persistence layer.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	quote := h.quoter.QuoteOrder(cmd.QuoteRequest())
	if !quote.IsValid() {
		return nil, NewRejectionError(quote.Reason())
	}

	destination, err := h.destination(cmd)
	if err != nil {
		return nil, err
	}

	lines, err := lineItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	placed, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), destination, lines, quote.Price(), now)
	if err != nil {
		return nil, err
	}

	result, err := h.gateway.Charge(ctx, ports.ChargeRequest{
		Reference:   placed.Number(),
		Amount:      placed.Total(),
		Currency:    chargeCurrency,
		Description: fmt.Sprintf("%d boxes of mangoes, %s", placed.Boxes(), placed.Method()),
		Card:        cmd.Card(),
	})
	if err != nil {
		return nil, fmt.Errorf("charge order %s: %w", placed.Number(), err)
	}
	if !result.Approved {
		return nil, NewPaymentDeclinedError(result.Message)
	}

	if err = placed.MarkPaid(result.TransactionID, time.Now()); err != nil {
		return nil, err
	}

	if err = h.persist(ctx, placed); err != nil {
		h.logger.Error("charged order was not stored",
			"order", placed.Number(), "transaction_id", result.TransactionID, "error", err)
		return nil, err
	}

	return placed, nil
}

func (h *PlaceOrderCommandHandler) destination(cmd PlaceOrderCommand) (order.Destination, error) {
	dest := cmd.Destination()

	method, err := delivery.ParseMethod(cmd.Method())
	if err != nil {
		return order.Destination{}, NewRejectionError(fmt.Sprintf("Invalid delivery type: %s", cmd.Method()))
	}

	if method == delivery.Pickup {
		if dest.AirportCode == "" {
			return order.Destination{}, NewRejectionError("Airport code is required for pickup delivery")
		}
		airport, ok := h.quoter.Airport(dest.AirportCode)
		if !ok {
			return order.Destination{}, NewRejectionError(fmt.Sprintf("Invalid airport code: %s", dest.AirportCode))
		}
		return order.NewPickupDestination(airport)
	}

	if dest.Region == "" || dest.Zipcode == "" || dest.Address == "" {
		return order.Destination{}, NewRejectionError("Doorstep delivery requires region, zipcode and delivery address")
	}
	return order.NewDoorstepDestination(dest.Address, dest.Region, dest.Zipcode)
}

func (h *PlaceOrderCommandHandler) persist(ctx context.Context, placed *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// lineItems keeps the lines with a positive quantity, in request order.
func lineItems(items []services.QuoteItem) ([]delivery.LineItem, error) {
	lines := make([]delivery.LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		itemType, err := delivery.ParseItemType(item.ItemType)
		if err != nil {
			return nil, err
		}
		line, err := delivery.NewLineItem(itemType, item.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
