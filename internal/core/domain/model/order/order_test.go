package order_test

import (
	"testing"
	"time"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func pickupDestination(t *testing.T) order.Destination {
	t.Helper()
	airport, err := coverage.NewAirport("George Bush Intercontinental", "IAH", "77032")
	require.NoError(t, err)
	dest, err := order.NewPickupDestination(airport)
	require.NoError(t, err)
	return dest
}

func doorstepDestination(t *testing.T) order.Destination {
	t.Helper()
	dest, err := order.NewDoorstepDestination("1 Main St", "CHICAGO", "60601")
	require.NoError(t, err)
	return dest
}

func lines(t *testing.T, pairs ...any) []delivery.LineItem {
	t.Helper()
	var result []delivery.LineItem
	for i := 0; i < len(pairs); i += 2 {
		line, err := delivery.NewLineItem(pairs[i].(delivery.ItemType), pairs[i+1].(int))
		require.NoError(t, err)
		result = append(result, line)
	}
	return result
}

func newProcessingOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, doorstepDestination(t),
		lines(t, delivery.Sindhri, 2, delivery.Ratol, 2), kernel.MustMoney("135.99"), testNow)
	require.NoError(t, err)
	return o, customerID
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pickup order with priced lines", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, pickupDestination(t),
			lines(t, delivery.Ratol, 8), kernel.MustMoney("264"), testNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.BelongsTo(customerID))
		assert.Equal(t, delivery.Pickup, o.Method())
		assert.Equal(t, "IAH", o.Destination().AirportCode())
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, "264.00", o.Total().String())
		assert.Equal(t, 8, o.Boxes())
		assert.Equal(t, "ORD-"+id.ShortCode(8), o.Number())
		assert.Equal(t, testNow, o.CreatedAt())
		assert.Empty(t, o.PaymentTransactionID())

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "33.00", items[0].UnitPrice().String())
		assert.Equal(t, "264.00", items[0].LineTotal().String())
	})

	t.Run("should split doorstep total over boxes", func(t *testing.T) {
		o, _ := newProcessingOrder(t)

		assert.Equal(t, delivery.Doorstep, o.Method())
		assert.Equal(t, "CHICAGO", o.Destination().Region())
		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "34.00", items[0].UnitPrice().String())
		assert.Equal(t, "68.00", items[0].LineTotal().String())
		assert.Equal(t, delivery.Ratol, items[1].ItemType())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidID, order.Destination{}, nil, kernel.ZeroMoney, testNow)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer id")
		assert.Contains(t, err.Error(), "destination")
		assert.Contains(t, err.Error(), "total")
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should reject zero value line item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), pickupDestination(t),
			[]delivery.LineItem{{}}, kernel.MustMoney("256"), testNow)

		require.ErrorIs(t, err, delivery.ErrLineItemIsNotConstructed)
	})
}

func TestNewDoorstepDestination(t *testing.T) {
	_, err := order.NewDoorstepDestination(" ", "", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "delivery address")
	assert.Contains(t, err.Error(), "region")
	assert.Contains(t, err.Error(), "zipcode")
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should record transaction", func(t *testing.T) {
		o, _ := newProcessingOrder(t)
		later := testNow.Add(time.Minute)

		require.NoError(t, o.MarkPaid("txn_123", later))

		assert.Equal(t, "txn_123", o.PaymentTransactionID())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should reject blank transaction", func(t *testing.T) {
		o, _ := newProcessingOrder(t)

		require.ErrorIs(t, o.MarkPaid("  ", testNow), errs.ErrValueIsRequired)
	})

	t.Run("should not pay twice", func(t *testing.T) {
		o, _ := newProcessingOrder(t)
		require.NoError(t, o.MarkPaid("txn_1", testNow))

		require.ErrorIs(t, o.MarkPaid("txn_2", testNow), errs.ErrValueIsInvalid)
		assert.Equal(t, "txn_1", o.PaymentTransactionID())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should follow the delivery lifecycle", func(t *testing.T) {
		o, _ := newProcessingOrder(t)

		require.NoError(t, o.ChangeStatus(order.Shipped, testNow))
		require.NoError(t, o.ChangeStatus(order.Delivered, testNow))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject skipping shipping", func(t *testing.T) {
		o, _ := newProcessingOrder(t)

		err := o.ChangeStatus(order.Delivered, testNow)

		require.ErrorIs(t, err, order.ErrStatusTransitionNotAllowed)
		assert.Equal(t, order.Processing, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel processing order of the owner", func(t *testing.T) {
		o, customerID := newProcessingOrder(t)

		require.NoError(t, o.Cancel(customerID, testNow))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject other customers", func(t *testing.T) {
		o, _ := newProcessingOrder(t)

		require.ErrorIs(t, o.Cancel(kernel.NewUUID(), testNow), order.ErrOrderNotOwned)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should reject shipped order", func(t *testing.T) {
		o, customerID := newProcessingOrder(t)
		require.NoError(t, o.ChangeStatus(order.Shipped, testNow))

		err := o.Cancel(customerID, testNow)

		require.ErrorIs(t, err, order.ErrStatusTransitionNotAllowed)
		assert.Contains(t, err.Error(), "only processing orders can be cancelled")
	})
}

func TestRestore(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := order.RestoreItem(delivery.Chaunsa, 4, kernel.MustMoney("30"), kernel.MustMoney("120"))
		require.NoError(t, err)

		o, err := order.Restore(order.Snapshot{
			ID:                   id,
			Number:               "ORD-ABCDEF12",
			CustomerID:           kernel.NewUUID(),
			Destination:          doorstepDestination(t),
			Items:                []order.Item{item},
			Total:                kernel.MustMoney("119.99"),
			Status:               order.Shipped,
			PaymentTransactionID: "txn_9",
			CreatedAt:            testNow,
			UpdatedAt:            testNow,
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-ABCDEF12", o.Number())
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "120.00", o.Items()[0].LineTotal().String())
		assert.Equal(t, "txn_9", o.PaymentTransactionID())
	})

	t.Run("should reject broken snapshot", func(t *testing.T) {
		o, err := order.Restore(order.Snapshot{Number: "X-1"})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "has no ORD- prefix")
		assert.Contains(t, err.Error(), "order items")
	})
}
