package commands

import (
	"errors"
	"fmt"
	"strings"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/core/ports"
	"mangoshop/internal/pkg/errs"
	"mangoshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderDestination holds the destination fields of a placed order.
// Pickup orders use AirportCode; doorstep orders use Address, Region and Zipcode.
type OrderDestination struct {
	AirportCode string
	Address     string
	Region      string
	Zipcode     string
}

// PlaceOrderCommand represents a customer's request to buy mangoes for pickup or doorstep delivery.
//
// The command checks only the shape of the request. Delivery rules, destination coverage
// and pricing are decided by the handler through the delivery engine.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    customerID,
//	    "doorstep",
//	    []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}},
//	    OrderDestination{Address: "1 Main St", Region: "CHICAGO", Zipcode: "60601"},
//	    ports.Card{Number: "4111111111111111", ExpMonth: 12, ExpYear: 2030, CVC: "123"},
//	)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	method      string
	items       []services.QuoteItem
	destination OrderDestination
	card        ports.Card

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Zero quantities are accepted and later dropped by the delivery rules. Negative ones and
// lines larger than delivery.MaxOrderBoxes are not.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	method string,
	items []services.QuoteItem,
	destination OrderDestination,
	card ports.Card,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMethod(method),
		cmd.setItems(items),
		cmd.setCard(card),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.destination = OrderDestination{
		AirportCode: strings.TrimSpace(destination.AirportCode),
		Address:     strings.TrimSpace(destination.Address),
		Region:      strings.TrimSpace(destination.Region),
		Zipcode:     strings.TrimSpace(destination.Zipcode),
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) Method() string {
	return c.method
}

// Items returns a copy of the requested lines.
func (c PlaceOrderCommand) Items() []services.QuoteItem {
	items := make([]services.QuoteItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c PlaceOrderCommand) Destination() OrderDestination {
	return c.destination
}

func (c PlaceOrderCommand) Card() ports.Card {
	return c.card
}

// QuoteRequest converts the command into the delivery engine's request.
func (c PlaceOrderCommand) QuoteRequest() services.QuoteRequest {
	return services.QuoteRequest{
		Method:      c.method,
		Items:       c.Items(),
		Region:      c.destination.Region,
		Zipcode:     c.destination.Zipcode,
		AirportCode: c.destination.AirportCode,
	}
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setMethod(method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return errs.NewValueIsRequiredError("delivery method")
	}

	c.method = method
	return nil
}

func (c *PlaceOrderCommand) setItems(items []services.QuoteItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for i, item := range items {
		if item.Quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("line %d has negative quantity %d", i+1, item.Quantity))
		}
		if item.Quantity > delivery.MaxOrderBoxes {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("line %d has %d boxes, at most %d are allowed",
					i+1, item.Quantity, delivery.MaxOrderBoxes))
		}
	}

	c.items = make([]services.QuoteItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setCard(card ports.Card) error {
	card.Number = strings.ReplaceAll(strings.TrimSpace(card.Number), " ", "")
	if card.Number == "" {
		return errs.NewValueIsRequiredError("card number")
	}

	c.card = card
	return nil
}
