package commands

import (
	"context"
	"time"

	"mangoshop/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels a processing order owned by the requesting customer.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID, customerID)
//	cancelled, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderNotOwned) {
//	    // someone else's order
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, cancels it and stores the new status in one transaction.
//
// Returns:
//   - errs.ErrObjectNotFound if the order does not exist
//   - order.ErrOrderNotOwned if the customer did not place it
//   - an error wrapping order.ErrStatusTransitionNotAllowed if it is past processing
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.Cancel(cmd.CustomerID(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
