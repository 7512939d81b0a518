package services

import (
	"fmt"
	"strings"

	"mangoshop/internal/core/domain/model/delivery"
)

const (
	pickupMinimumBoxes       = 8
	pickupMaxDistinctTypes   = 1
	doorstepMaxDistinctTypes = 2
)

// OrderRuleValidator decides whether a proposed order is legal for its delivery method
// and computes its provisional price.
//
// Rules, in evaluation order:
//   - itemTypes and quantities must have the same length
//   - lines with a quantity of zero or less are dropped
//   - totals past delivery.MaxOrderBoxes are never allowed, whatever the line sizes
//   - every remaining item type must be a catalog variety
//   - pickup: at least 8 boxes, a single variety, a total of 8, 12, 16, 20 or 24 boxes
//   - doorstep: a total of 2 or 4 boxes, at most two varieties
//
// Doorstep prices from Validate are the standard tier. The delivery engine re-prices
// them once the destination region is known.
type OrderRuleValidator struct {
	pricing PricingTables
}

func NewOrderRuleValidator(pricing PricingTables) OrderRuleValidator {
	return OrderRuleValidator{pricing: pricing}
}

// Validate checks the proposed order. It never returns an error: every rejection is an
// invalid quote with a reason. Calling it twice with the same input yields the same quote.
func (v OrderRuleValidator) Validate(method string, itemTypes []string, quantities []int) delivery.Quote {
	if len(itemTypes) != len(quantities) {
		return delivery.InvalidQuote("Mismatch between item types and quantities")
	}

	types := make([]delivery.ItemType, 0, len(itemTypes))
	total := 0
	for i, qty := range quantities {
		if qty <= 0 {
			continue
		}
		itemType, err := delivery.ParseItemType(itemTypes[i])
		if err != nil {
			return delivery.InvalidQuote(fmt.Sprintf("Invalid item type: %s", itemTypes[i]))
		}
		types = append(types, itemType)
		total = addBoxes(total, qty)
	}
	distinct := distinctItemTypes(types)

	m, err := delivery.ParseMethod(method)
	if err != nil {
		return delivery.InvalidQuote(fmt.Sprintf("Invalid delivery type: %s", method))
	}

	switch m {
	case delivery.Pickup:
		return v.validatePickup(distinct, total)
	case delivery.Doorstep:
		return v.validateDoorstep(distinct, total)
	default:
		return delivery.InvalidQuote(fmt.Sprintf("Invalid delivery type: %s", method))
	}
}

func (v OrderRuleValidator) validatePickup(distinct []delivery.ItemType, total int) delivery.Quote {
	if total < pickupMinimumBoxes {
		return delivery.InvalidQuote(fmt.Sprintf("Pickup orders require a minimum of %d boxes", pickupMinimumBoxes))
	}
	if len(distinct) > pickupMaxDistinctTypes {
		return delivery.InvalidQuote("Pickup orders cannot mix different item types")
	}
	if !delivery.Pickup.AllowsQuantity(total) {
		allowed, _ := delivery.Pickup.AllowedQuantities()
		return delivery.InvalidQuote(
			fmt.Sprintf("Pickup orders must be one of these quantities: %s", formatQuantities(allowed)))
	}

	price, err := v.pricing.PickupPrice(distinct[0], total)
	if err != nil {
		return delivery.InvalidQuote(err.Error())
	}
	return delivery.ValidQuote(price, total)
}

func (v OrderRuleValidator) validateDoorstep(distinct []delivery.ItemType, total int) delivery.Quote {
	if !delivery.Doorstep.AllowsQuantity(total) {
		return delivery.InvalidQuote("Doorstep orders must be either 2 or 4 boxes in total")
	}
	if len(distinct) > doorstepMaxDistinctTypes {
		return delivery.InvalidQuote(
			fmt.Sprintf("Doorstep orders can mix at most %d different item types", doorstepMaxDistinctTypes))
	}

	price, err := v.pricing.StandardDoorstepPrice(total)
	if err != nil {
		return delivery.InvalidQuote(err.Error())
	}
	return delivery.ValidQuote(price, total)
}

// addBoxes saturates at one past delivery.MaxOrderBoxes so that huge quantities
// cannot wrap the total around into an allowed value.
func addBoxes(total, qty int) int {
	if qty > delivery.MaxOrderBoxes-total {
		return delivery.MaxOrderBoxes + 1
	}
	return total + qty
}

// distinctItemTypes keeps the first occurrence of every type.
func distinctItemTypes(types []delivery.ItemType) []delivery.ItemType {
	var distinct []delivery.ItemType
	seen := make(map[delivery.ItemType]struct{}, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		distinct = append(distinct, t)
	}
	return distinct
}

// formatQuantities renders [8, 12, 16].
func formatQuantities(quantities []int) string {
	parts := make([]string, len(quantities))
	for i, q := range quantities {
		parts[i] = fmt.Sprint(q)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
