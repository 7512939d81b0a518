package commands_test

import (
	"errors"
	"testing"
	"time"

	"mangoshop/internal/core/application/usecases/commands"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	dest, err := order.NewDoorstepDestination("1 Main St", "CHICAGO", "60601")
	require.NoError(t, err)
	line, err := delivery.NewLineItem(delivery.Sindhri, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, dest,
		[]delivery.LineItem{line}, kernel.MustMoney("69.99"), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := newStoredOrder(t, customerID)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.True(t, cancelled.UpdatedAt().After(cancelled.CreatedAt()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderNotOwned)
	assert.Equal(t, order.Processing, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyShipped(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := newStoredOrder(t, customerID)
	require.NoError(t, stored.ChangeStatus(order.Shipped, time.Now()))
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrStatusTransitionNotAllowed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "begin error")
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), "shipped")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_TransitionNotAllowed(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), "delivered")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrStatusTransitionNotAllowed)
	assert.Equal(t, order.Processing, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateOrderStatusCommand(stored.ID(), "cancelled")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", ctx, stored).Return(nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "commit error")
	uow.AssertExpectations(t)
}
