package delivery

import (
	"errors"
	"fmt"

	"mangoshop/internal/pkg/errs"
	"mangoshop/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a validated (item type, quantity) pair. The quantity lies in 1..MaxOrderBoxes.
type LineItem struct { //nolint:recvcheck //using for validation
	itemType ItemType
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem validates the item type and requires 0 < quantity <= MaxOrderBoxes.
func NewLineItem(itemType ItemType, quantity int) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setItemType(itemType),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) ItemType() ItemType {
	return l.itemType
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l *LineItem) setItemType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	l.itemType = itemType
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxOrderBoxes {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is more than %d boxes", quantity, MaxOrderBoxes))
	}
	l.quantity = quantity
	return nil
}

// SplitLineItems returns the raw item types and quantities of items, the shape the
// order rule validator accepts.
func SplitLineItems(items []LineItem) ([]string, []int) {
	types := make([]string, len(items))
	quantities := make([]int, len(items))
	for i, item := range items {
		types[i] = item.itemType.String()
		quantities[i] = item.quantity
	}
	return types, quantities
}
