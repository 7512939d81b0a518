package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/pkg/errs"
)

const numberPrefix = "ORD-"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or Restore. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Restore")

	// ErrOrderNotOwned is returned when a customer acts on somebody else's order.
	ErrOrderNotOwned = errors.New("order does not belong to the customer")
)

// Order is the aggregate root of a placed mango order.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - The destination matches the delivery method
//   - Has at least one line item and a positive total
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or Restore
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the customer facing reference, ORD- followed by 8 hex characters
	number string

	customerID  kernel.UUID
	method      delivery.Method
	destination Destination
	items       []Item
	total       kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// paymentTransactionID is set once the charge succeeded
	paymentTransactionID string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or Restore
	isConstructed bool
}

// NewOrder creates a Processing order priced at total.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer placing the order
//   - destination: Pickup or doorstep destination, its method becomes the order's method
//   - lines: Ordered line items, at least one
//   - total: The quoted price for the whole order
//   - now: Creation timestamp
//
// The unit price of every line is total divided by the number of boxes, rounded to cents,
// and the line total is unit price times quantity.
//
// Example:
//
//	line, _ := delivery.NewLineItem(delivery.Ratol, 8)
//	airport, _ := directory.Airport("IAH")
//	dest, _ := order.NewPickupDestination(airport)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, dest, []delivery.LineItem{line}, quote.Price(), time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	destination Destination,
	lines []delivery.LineItem,
	total kernel.Money,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Processing,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDestination(destination),
		order.setTotal(total),
		order.setLines(lines, total),
	); err != nil {
		return nil, err
	}

	order.number = numberPrefix + id.ShortCode(8)
	return order, nil
}

// Snapshot carries the persisted state of an order for Restore.
type Snapshot struct {
	ID                   kernel.UUID
	Number               string
	CustomerID           kernel.UUID
	Destination          Destination
	Items                []Item
	Total                kernel.Money
	Status               Status
	PaymentTransactionID string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Restore rebuilds an order loaded from storage. Prices are taken as stored.
func Restore(s Snapshot) (*Order, error) {
	order := &Order{
		number:               s.Number,
		items:                append([]Item(nil), s.Items...),
		status:               s.Status,
		paymentTransactionID: s.PaymentTransactionID,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
		isConstructed:        true,
	}

	var numberErr, itemsErr error
	if !strings.HasPrefix(s.Number, numberPrefix) {
		numberErr = errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q has no %s prefix", s.Number, numberPrefix))
	}
	if len(s.Items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("order items")
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setCustomerID(s.CustomerID),
		order.setDestination(s.Destination),
		order.setTotal(s.Total),
		s.Status.Validate(),
		numberErr,
		itemsErr,
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Method() delivery.Method {
	return o.method
}

func (o *Order) Destination() Destination {
	return o.destination
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Boxes returns the total number of boxes.
func (o *Order) Boxes() int {
	total := 0
	for _, item := range o.items {
		total += item.quantity
	}
	return total
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentTransactionID() string {
	return o.paymentTransactionID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// BelongsTo reports whether customerID placed the order.
func (o *Order) BelongsTo(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// MarkPaid records the gateway transaction of the successful charge.
func (o *Order) MarkPaid(transactionID string, now time.Time) error {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return errs.NewValueIsRequiredError("payment transaction id")
	}
	if o.paymentTransactionID != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment transaction id", fmt.Errorf("order %s is already paid", o.number))
	}
	o.paymentTransactionID = transactionID
	o.updatedAt = now.UTC()
	return nil
}

// ChangeStatus moves the order to target following the Status state machine.
//
// Returns an error wrapping ErrStatusTransitionNotAllowed when the move is not allowed,
// for example shipping a cancelled order.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = now.UTC()
	return nil
}

// Cancel withdraws a Processing order on behalf of its customer.
//
// Returns:
//   - ErrOrderNotOwned if customerID did not place the order
//   - an error wrapping ErrStatusTransitionNotAllowed if the order is past Processing
func (o *Order) Cancel(customerID kernel.UUID, now time.Time) error {
	if !o.BelongsTo(customerID) {
		return ErrOrderNotOwned
	}
	if o.status != Processing {
		return fmt.Errorf("%w: only processing orders can be cancelled, order %s is %s",
			ErrStatusTransitionNotAllowed, o.number, o.status)
	}
	return o.ChangeStatus(Cancelled, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDestination(destination Destination) error {
	if err := destination.method.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	o.destination = destination
	o.method = destination.method
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if total.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is not greater than 0", total))
	}
	o.total = total
	return nil
}

// setLines prices the lines from the order total. Used only by NewOrder.
func (o *Order) setLines(lines []delivery.LineItem, total kernel.Money) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	boxes := 0
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		boxes += line.Quantity()
	}

	unitPrice, err := total.Split(boxes)
	if err != nil {
		return err
	}

	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			itemType:  line.ItemType(),
			quantity:  line.Quantity(),
			unitPrice: unitPrice,
			lineTotal: unitPrice.Mul(line.Quantity()),
		})
	}
	o.items = items
	return nil
}
