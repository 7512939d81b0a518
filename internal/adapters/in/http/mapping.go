package http

import (
	"mangoshop/internal/core/application/usecases/queries"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/generated/servers"
	"mangoshop/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return converted, nil
}

func toQuoteItems(items []servers.QuoteItem) []services.QuoteItem {
	result := make([]services.QuoteItem, len(items))
	for i, item := range items {
		result[i] = services.QuoteItem{ItemType: item.ItemType, Quantity: item.Quantity}
	}
	return result
}

func toQuoteResponse(quote delivery.Quote) servers.Quote {
	response := servers.Quote{
		Valid:      quote.IsValid(),
		Price:      quote.Price().Float64(),
		TotalBoxes: quote.Boxes(),
	}
	if !quote.IsValid() {
		response.Message = stringPtr(quote.Reason())
	}
	return response
}

// toOrderResponse renders a placed or updated order. Destination fields that do not apply
// to the delivery method are left out.
func toOrderResponse(o *order.Order) servers.Order {
	customerID := o.CustomerID().Bytes()
	dest := o.Destination()

	response := servers.Order{
		Id:             o.ID().Bytes(),
		Number:         o.Number(),
		CustomerId:     &customerID,
		DeliveryMethod: o.Method().String(),
		Status:         o.Status().String(),
		TotalAmount:    o.Total().Float64(),
		Items:          make([]servers.OrderItem, 0, len(o.Items())),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
	if o.PaymentTransactionID() != "" {
		response.PaymentTransactionId = stringPtr(o.PaymentTransactionID())
	}

	switch dest.Method() {
	case delivery.Pickup:
		response.AirportCode = stringPtr(dest.AirportCode())
		response.AirportName = stringPtr(dest.AirportName())
		response.Zipcode = stringPtr(dest.AirportZip())
	case delivery.Doorstep:
		response.DeliveryAddress = stringPtr(dest.Address())
		response.Region = stringPtr(dest.Region())
		response.Zipcode = stringPtr(dest.Zip())
	}

	for _, item := range o.Items() {
		response.Items = append(response.Items, servers.OrderItem{
			ItemType:  item.ItemType().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Float64(),
			LineTotal: item.LineTotal().Float64(),
		})
	}
	return response
}

func toListedOrder(o queries.CustomerOrderResponse) servers.Order {
	response := servers.Order{
		Id:             o.ID.Bytes(),
		Number:         o.Number,
		DeliveryMethod: o.DeliveryMethod,
		Status:         o.Status,
		TotalAmount:    o.TotalAmount.Float64(),
		Items:          make([]servers.OrderItem, 0, len(o.Items)),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		AirportCode:    optionalString(o.AirportCode),
		Region:         optionalString(o.Region),
		Zipcode:        optionalString(o.Zipcode),
	}
	response.PaymentTransactionId = optionalString(o.PaymentTransactionID)

	for _, item := range o.Items {
		response.Items = append(response.Items, servers.OrderItem{
			ItemType:  item.ItemType,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Float64(),
			LineTotal: item.LineTotal.Float64(),
		})
	}
	return response
}

func stringPtr(s string) *string {
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
