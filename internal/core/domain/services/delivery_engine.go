package services

import (
	"fmt"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
)

// QuoteItem is one requested (item type, quantity) line as submitted by a caller.
type QuoteItem struct {
	ItemType string
	Quantity int
}

// QuoteRequest is a proposed order: a delivery method, its lines and the optional
// destination fields of that method.
type QuoteRequest struct {
	Method      string
	Items       []QuoteItem
	Region      string
	Zipcode     string
	AirportCode string
}

// DeliveryEngine answers "is this order valid, and what does it cost".
//
// It composes the reference data Directory, the PricingTables and the OrderRuleValidator.
// The engine holds no mutable state and is safe for concurrent use.
//
// Example usage:
//
//	engine := services.NewDeliveryEngine(directory)
//	quote := engine.QuoteOrder(services.QuoteRequest{
//	    Method:  "doorstep",
//	    Items:   []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}},
//	    Region:  "HOUSTON IAH",
//	    Zipcode: "77001",
//	})
//	if !quote.IsValid() {
//	    // quote.Reason() explains the rejection
//	}
type DeliveryEngine struct {
	directory *coverage.Directory
	pricing   PricingTables
	validator OrderRuleValidator
}

// NewDeliveryEngine wires the engine around a loaded Directory.
func NewDeliveryEngine(directory *coverage.Directory) *DeliveryEngine {
	pricing := NewPricingTables(directory)
	return &DeliveryEngine{
		directory: directory,
		pricing:   pricing,
		validator: NewOrderRuleValidator(pricing),
	}
}

// ListAirports returns the pickup airports.
func (e *DeliveryEngine) ListAirports() []coverage.Airport {
	return e.directory.Airports()
}

// ListRegions returns the cleaned doorstep region names in table order.
func (e *DeliveryEngine) ListRegions() []string {
	return e.directory.Regions()
}

// ListItemTypes returns the catalog varieties.
func (e *DeliveryEngine) ListItemTypes() []delivery.ItemType {
	return delivery.AllItemTypes()
}

// AllowedQuantities returns the allowed box totals for a delivery method wire name.
func (e *DeliveryEngine) AllowedQuantities(method string) ([]int, error) {
	m, err := delivery.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return m.AllowedQuantities()
}

// Airport looks up a pickup airport by code.
func (e *DeliveryEngine) Airport(code string) (coverage.Airport, bool) {
	return e.directory.Airport(code)
}

// ResolveZip checks that zip belongs to region.
func (e *DeliveryEngine) ResolveZip(zip, region string) coverage.Resolution {
	return e.directory.ResolveZip(zip, region)
}

// ValidateOrder applies the delivery method rules to parallel type and quantity lists.
func (e *DeliveryEngine) ValidateOrder(method string, itemTypes []string, quantities []int) delivery.Quote {
	return e.validator.Validate(method, itemTypes, quantities)
}

// PickupPrice prices a pickup order of a single item type.
func (e *DeliveryEngine) PickupPrice(itemType string, quantity int) (kernel.Money, error) {
	t, err := delivery.ParseItemType(itemType)
	if err != nil {
		return kernel.ZeroMoney, err
	}
	return e.pricing.PickupPrice(t, quantity)
}

// DoorstepPrice prices a doorstep order shipped to region.
func (e *DeliveryEngine) DoorstepPrice(region string, quantity int) (kernel.Money, error) {
	return e.pricing.DoorstepPrice(region, quantity)
}

// QuoteOrder is the single validation path used by quote previews and order placement.
//
// The lines are validated first. A valid doorstep quote with a region is then checked
// against the ZIP code (when one is given) and re-priced for that region. A valid pickup
// quote with an airport code requires the airport to exist.
func (e *DeliveryEngine) QuoteOrder(req QuoteRequest) delivery.Quote {
	itemTypes := make([]string, len(req.Items))
	quantities := make([]int, len(req.Items))
	for i, item := range req.Items {
		itemTypes[i] = item.ItemType
		quantities[i] = item.Quantity
	}

	quote := e.validator.Validate(req.Method, itemTypes, quantities)
	if !quote.IsValid() {
		return quote
	}

	method, _ := delivery.ParseMethod(req.Method)
	switch method {
	case delivery.Pickup:
		if req.AirportCode != "" {
			if _, ok := e.directory.Airport(req.AirportCode); !ok {
				return delivery.InvalidQuote(fmt.Sprintf("Invalid airport code: %s", req.AirportCode))
			}
		}
	case delivery.Doorstep:
		if req.Region == "" {
			return quote
		}
		if req.Zipcode != "" {
			if res := e.directory.ResolveZip(req.Zipcode, req.Region); !res.IsValid() {
				return delivery.InvalidQuote(res.Reason())
			}
		}
		price, err := e.pricing.DoorstepPrice(req.Region, quote.Boxes())
		if err != nil {
			return delivery.InvalidQuote(fmt.Sprintf("Region %s is not available for doorstep delivery", req.Region))
		}
		quote = quote.WithPrice(price)
	}

	return quote
}
