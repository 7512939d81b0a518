package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List pickup airports
	// (GET /delivery/airports)
	GetAirports(ctx echo.Context) error
	// Allowed box totals of a delivery method
	// (GET /delivery/allowed-quantities/{delivery_method})
	GetAllowedQuantities(ctx echo.Context, deliveryMethod string) error
	// List mango varieties
	// (GET /delivery/item-types)
	GetItemTypes(ctx echo.Context) error
	// Price of a box total
	// (GET /delivery/price)
	GetPrice(ctx echo.Context, params GetPriceParams) error
	// Validate and price a proposed order
	// (POST /delivery/quote)
	QuoteOrder(ctx echo.Context) error
	// List doorstep regions
	// (GET /delivery/regions)
	GetRegions(ctx echo.Context) error
	// Check a ZIP code against a region
	// (GET /delivery/validate-zipcode)
	ValidateZipcode(ctx echo.Context, params ValidateZipcodeParams) error
	// List a customer's orders
	// (GET /orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Pay for and place an order
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// Processing orders per delivery method
	// (GET /orders/backlog)
	GetOrderBacklog(ctx echo.Context) error
	// Cancel a processing order
	// (DELETE /orders/{order_id})
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID, params CancelOrderParams) error
	// Change the status of an order
	// (PUT /orders/{order_id}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetAirports converts echo context to params.
func (w *ServerInterfaceWrapper) GetAirports(ctx echo.Context) error {
	return w.Handler.GetAirports(ctx)
}

// GetAllowedQuantities converts echo context to params.
func (w *ServerInterfaceWrapper) GetAllowedQuantities(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "delivery_method" -------------
	var deliveryMethod string

	err = runtime.BindStyledParameterWithOptions("simple", "delivery_method", ctx.Param("delivery_method"), &deliveryMethod,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter delivery_method: %s", err))
	}

	return w.Handler.GetAllowedQuantities(ctx, deliveryMethod)
}

// GetItemTypes converts echo context to params.
func (w *ServerInterfaceWrapper) GetItemTypes(ctx echo.Context) error {
	return w.Handler.GetItemTypes(ctx)
}

// GetPrice converts echo context to params.
func (w *ServerInterfaceWrapper) GetPrice(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetPriceParams
	// ------------- Required query parameter "delivery_method" -------------

	err = runtime.BindQueryParameter("form", true, true, "delivery_method", ctx.QueryParams(), &params.DeliveryMethod)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter delivery_method: %s", err))
	}

	// ------------- Required query parameter "quantity" -------------

	err = runtime.BindQueryParameter("form", true, true, "quantity", ctx.QueryParams(), &params.Quantity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter quantity: %s", err))
	}

	// ------------- Optional query parameter "item_type" -------------

	err = runtime.BindQueryParameter("form", true, false, "item_type", ctx.QueryParams(), &params.ItemType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter item_type: %s", err))
	}

	// ------------- Optional query parameter "region" -------------

	err = runtime.BindQueryParameter("form", true, false, "region", ctx.QueryParams(), &params.Region)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter region: %s", err))
	}

	return w.Handler.GetPrice(ctx, params)
}

// QuoteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) QuoteOrder(ctx echo.Context) error {
	return w.Handler.QuoteOrder(ctx)
}

// GetRegions converts echo context to params.
func (w *ServerInterfaceWrapper) GetRegions(ctx echo.Context) error {
	return w.Handler.GetRegions(ctx)
}

// ValidateZipcode converts echo context to params.
func (w *ServerInterfaceWrapper) ValidateZipcode(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ValidateZipcodeParams
	// ------------- Required query parameter "zipcode" -------------

	err = runtime.BindQueryParameter("form", true, true, "zipcode", ctx.QueryParams(), &params.Zipcode)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zipcode: %s", err))
	}

	// ------------- Required query parameter "region" -------------

	err = runtime.BindQueryParameter("form", true, true, "region", ctx.QueryParams(), &params.Region)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter region: %s", err))
	}

	return w.Handler.ValidateZipcode(ctx, params)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Required query parameter "customer_id" -------------

	err = runtime.BindQueryParameter("form", true, true, "customer_id", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer_id: %s", err))
	}

	optional := []struct {
		name string
		dest any
	}{
		{"status", &params.Status},
		{"item_type", &params.ItemType},
		{"start_date", &params.StartDate},
		{"end_date", &params.EndDate},
		{"sort_by", &params.SortBy},
		{"sort_desc", &params.SortDesc},
		{"skip", &params.Skip},
		{"limit", &params.Limit},
	}
	for _, p := range optional {
		err = runtime.BindQueryParameter("form", true, false, p.name, ctx.QueryParams(), p.dest)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", p.name, err))
		}
	}

	return w.Handler.GetOrders(ctx, params)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// GetOrderBacklog converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderBacklog(ctx echo.Context) error {
	return w.Handler.GetOrderBacklog(ctx)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "order_id" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "order_id", ctx.Param("order_id"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order_id: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params CancelOrderParams
	// ------------- Required query parameter "customer_id" -------------

	err = runtime.BindQueryParameter("form", true, true, "customer_id", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer_id: %s", err))
	}

	return w.Handler.CancelOrder(ctx, orderId, params)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "order_id" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "order_id", ctx.Param("order_id"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order_id: %s", err))
	}

	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/delivery/airports", wrapper.GetAirports)
	router.GET(baseURL+"/delivery/allowed-quantities/:delivery_method", wrapper.GetAllowedQuantities)
	router.GET(baseURL+"/delivery/item-types", wrapper.GetItemTypes)
	router.GET(baseURL+"/delivery/price", wrapper.GetPrice)
	router.POST(baseURL+"/delivery/quote", wrapper.QuoteOrder)
	router.GET(baseURL+"/delivery/regions", wrapper.GetRegions)
	router.GET(baseURL+"/delivery/validate-zipcode", wrapper.ValidateZipcode)
	router.GET(baseURL+"/orders", wrapper.GetOrders)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/orders/backlog", wrapper.GetOrderBacklog)
	router.DELETE(baseURL+"/orders/:order_id", wrapper.CancelOrder)
	router.PUT(baseURL+"/orders/:order_id/status", wrapper.UpdateOrderStatus)
}
