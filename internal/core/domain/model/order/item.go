package order

import (
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
)

// Item is a priced order line. Unit prices are derived from the order total, so all
// items of an order share the same unit price.
type Item struct {
	itemType  delivery.ItemType
	quantity  int
	unitPrice kernel.Money
	lineTotal kernel.Money
}

// RestoreItem rebuilds a persisted order line.
func RestoreItem(itemType delivery.ItemType, quantity int, unitPrice, lineTotal kernel.Money) (Item, error) {
	line, err := delivery.NewLineItem(itemType, quantity)
	if err != nil {
		return Item{}, err
	}
	return Item{
		itemType:  line.ItemType(),
		quantity:  line.Quantity(),
		unitPrice: unitPrice,
		lineTotal: lineTotal,
	}, nil
}

func (i Item) ItemType() delivery.ItemType {
	return i.itemType
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}
