// Package servers holds the HTTP API model and the echo routing glue of ServerInterface.
//
// The layout follows oapi-codegen's echo server output so handlers only deal with bound,
// typed parameters. The API description itself lives in the docs package and is exposed
// in OpenAPI 3 form by GetSwagger.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Airport defines model for Airport.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Zip  string `json:"zip"`
}

// AllowedQuantities defines model for AllowedQuantities.
type AllowedQuantities struct {
	DeliveryMethod string `json:"delivery_method"`
	Quantities     []int  `json:"quantities"`
}

// BacklogEntry defines model for BacklogEntry.
type BacklogEntry struct {
	Count          int64  `json:"count"`
	DeliveryMethod string `json:"delivery_method"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	AirportCode     *string            `json:"airport_code,omitempty"`
	CustomerId      openapi_types.UUID `json:"customer_id"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	DeliveryMethod  string             `json:"delivery_method"`
	Items           []QuoteItem        `json:"items"`
	Payment         PaymentCard        `json:"payment"`
	Region          *string            `json:"region,omitempty"`
	Zipcode         *string            `json:"zipcode,omitempty"`
}

// Order defines model for Order.
type Order struct {
	AirportCode          *string             `json:"airport_code,omitempty"`
	AirportName          *string             `json:"airport_name,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	CustomerId           *openapi_types.UUID `json:"customer_id,omitempty"`
	DeliveryAddress      *string             `json:"delivery_address,omitempty"`
	DeliveryMethod       string              `json:"delivery_method"`
	Id                   openapi_types.UUID  `json:"id"`
	Items                []OrderItem         `json:"items"`
	Number               string              `json:"number"`
	PaymentTransactionId *string             `json:"payment_transaction_id,omitempty"`
	Region               *string             `json:"region,omitempty"`
	Status               string              `json:"status"`
	TotalAmount          float64             `json:"total_amount"`
	UpdatedAt            time.Time           `json:"updated_at"`
	Zipcode              *string             `json:"zipcode,omitempty"`
}

// OrderBacklog defines model for OrderBacklog.
type OrderBacklog struct {
	Entries []BacklogEntry `json:"entries"`
	Total   int64          `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ItemType  string  `json:"item_type"`
	LineTotal float64 `json:"line_total"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderStatusUpdate defines model for OrderStatusUpdate.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// PaymentCard defines model for PaymentCard.
type PaymentCard struct {
	Cvc      string  `json:"cvc"`
	ExpMonth int     `json:"exp_month"`
	ExpYear  int     `json:"exp_year"`
	Holder   *string `json:"holder,omitempty"`
	Number   string  `json:"number"`
}

// Price defines model for Price.
type Price struct {
	DeliveryMethod string  `json:"delivery_method"`
	ItemType       *string `json:"item_type,omitempty"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Region         *string `json:"region,omitempty"`
}

// Quote defines model for Quote.
type Quote struct {
	Message    *string `json:"message,omitempty"`
	Price      float64 `json:"price"`
	TotalBoxes int     `json:"total_boxes"`
	Valid      bool    `json:"valid"`
}

// QuoteItem defines model for QuoteItem.
type QuoteItem struct {
	ItemType string `json:"item_type"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest defines model for QuoteRequest.
type QuoteRequest struct {
	AirportCode    *string     `json:"airport_code,omitempty"`
	DeliveryMethod string      `json:"delivery_method"`
	Items          []QuoteItem `json:"items"`
	Region         *string     `json:"region,omitempty"`
	Zipcode        *string     `json:"zipcode,omitempty"`
}

// ZipcodeValidation defines model for ZipcodeValidation.
type ZipcodeValidation struct {
	Message *string `json:"message,omitempty"`
	Valid   bool    `json:"valid"`
}

// ValidateZipcodeParams defines parameters for ValidateZipcode.
type ValidateZipcodeParams struct {
	Zipcode string `form:"zipcode" json:"zipcode"`
	Region  string `form:"region" json:"region"`
}

// GetPriceParams defines parameters for GetPrice.
type GetPriceParams struct {
	DeliveryMethod string  `form:"delivery_method" json:"delivery_method"`
	Quantity       int     `form:"quantity" json:"quantity"`
	ItemType       *string `form:"item_type,omitempty" json:"item_type,omitempty"`
	Region         *string `form:"region,omitempty" json:"region,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	CustomerId openapi_types.UUID `form:"customer_id" json:"customer_id"`
	Status     *string            `form:"status,omitempty" json:"status,omitempty"`
	ItemType   *string            `form:"item_type,omitempty" json:"item_type,omitempty"`
	StartDate  *string            `form:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate    *string            `form:"end_date,omitempty" json:"end_date,omitempty"`
	SortBy     *string            `form:"sort_by,omitempty" json:"sort_by,omitempty"`
	SortDesc   *bool              `form:"sort_desc,omitempty" json:"sort_desc,omitempty"`
	Skip       *int               `form:"skip,omitempty" json:"skip,omitempty"`
	Limit      *int               `form:"limit,omitempty" json:"limit,omitempty"`
}

// CancelOrderParams defines parameters for CancelOrder.
type CancelOrderParams struct {
	CustomerId openapi_types.UUID `form:"customer_id" json:"customer_id"`
}

// QuoteOrderJSONRequestBody defines body for QuoteOrder for application/json ContentType.
type QuoteOrderJSONRequestBody = QuoteRequest

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = OrderStatusUpdate
