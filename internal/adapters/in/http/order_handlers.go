package http

import (
	"errors"
	"net/http"
	"strings"

	"mangoshop/internal/core/application/usecases/commands"
	"mangoshop/internal/core/application/usecases/queries"
	"mangoshop/internal/core/ports"
	"mangoshop/internal/generated/servers"
	"mangoshop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PlaceOrder godoc
//
//	@Summary		Pay for and place an order
//	@Description	Validates the order with the delivery rules, charges the card and stores the order.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		servers.NewOrder	true	"Order with payment card"
//	@Success		201		{object}	servers.Order
//	@Failure		400		{object}	servers.Error
//	@Failure		402		{object}	servers.Error
//	@Failure		500		{object}	servers.Error
//	@Router			/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := toKernelUUID("customer id", request.CustomerId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		customerID,
		request.DeliveryMethod,
		toQuoteItems(request.Items),
		commands.OrderDestination{
			AirportCode: valueOf(request.AirportCode),
			Address:     valueOf(request.DeliveryAddress),
			Region:      valueOf(request.Region),
			Zipcode:     valueOf(request.Zipcode),
		},
		ports.Card{
			Number:   request.Payment.Number,
			ExpMonth: request.Payment.ExpMonth,
			ExpYear:  request.Payment.ExpYear,
			CVC:      request.Payment.Cvc,
			Holder:   valueOf(request.Payment.Holder),
		},
	)
	if err != nil {
		s.observeOrder(request.DeliveryMethod, metrics.OutcomeRejected)
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	placed, err := s.useCases.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.observeOrder(request.DeliveryMethod, orderOutcome(err))
		return s.respondError(ctx, err)
	}

	s.observeOrder(placed.Method().String(), metrics.OutcomePlaced)
	s.logger.Info("order placed",
		"order", placed.Number(), "method", placed.Method().String(), "total", placed.Total().String())

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrders godoc
//
//	@Summary		List a customer's orders
//	@Description	Unknown filters are ignored. Results are sorted newest first unless sort parameters say otherwise.
//	@Tags			orders
//	@Produce		json
//	@Param			customer_id	query		string	true	"Customer id"	Format(uuid)
//	@Param			status		query		string	false	"Order status"
//	@Param			item_type	query		string	false	"Item type contained in the order"
//	@Param			start_date	query		string	false	"Earliest creation date, YYYY-MM-DD or RFC 3339"
//	@Param			end_date	query		string	false	"Latest creation date, YYYY-MM-DD or RFC 3339"
//	@Param			sort_by		query		string	false	"created_at, total_amount or status"
//	@Param			sort_desc	query		bool	false	"Sort descending, default true"
//	@Param			skip		query		int		false	"Orders to skip"
//	@Param			limit		query		int		false	"Page size, at most 100"
//	@Success		200			{array}		servers.Order
//	@Failure		400			{object}	servers.Error
//	@Failure		500			{object}	servers.Error
//	@Router			/orders [get]
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	customerID, err := toKernelUUID("customer id", params.CustomerId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	filter := queries.CustomerOrdersFilter{
		Status:   valueOf(params.Status),
		ItemType: valueOf(params.ItemType),
		From:     valueOf(params.StartDate),
		To:       valueOf(params.EndDate),
		SortBy:   valueOf(params.SortBy),
	}
	if params.SortDesc != nil {
		filter.Ascending = !*params.SortDesc
	}
	if params.Skip != nil {
		filter.Skip = *params.Skip
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, filter)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.useCases.CustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toListedOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderBacklog godoc
//
//	@Summary	Processing orders per delivery method
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	servers.OrderBacklog
//	@Failure	500	{object}	servers.Error
//	@Router		/orders/backlog [get]
func (s *Server) GetOrderBacklog(ctx echo.Context) error {
	backlog, err := s.useCases.OrderBacklog.Handle(ctx.Request().Context(), queries.NewGetOrderBacklogQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := servers.OrderBacklog{
		Entries: make([]servers.BacklogEntry, len(backlog.Entries)),
		Total:   backlog.Total,
	}
	for i, entry := range backlog.Entries {
		response.Entries[i] = servers.BacklogEntry{
			DeliveryMethod: entry.DeliveryMethod,
			Count:          entry.Count,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder godoc
//
//	@Summary		Cancel a processing order
//	@Description	Only the customer who placed the order can cancel it.
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order id"		Format(uuid)
//	@Param			customer_id	query		string	true	"Customer id"	Format(uuid)
//	@Success		200			{object}	servers.Order
//	@Failure		403			{object}	servers.Error
//	@Failure		404			{object}	servers.Error
//	@Failure		409			{object}	servers.Error
//	@Router			/orders/{order_id} [delete]
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.CancelOrderParams) error {
	orderID, err := toKernelUUID("order id", orderId)
	if err != nil {
		return s.respondError(ctx, err)
	}
	customerID, err := toKernelUUID("customer id", params.CustomerId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cancelled, err := s.useCases.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.Info("order cancelled", "order", cancelled.Number())
	return ctx.JSON(http.StatusOK, toOrderResponse(cancelled))
}

// UpdateOrderStatus godoc
//
//	@Summary		Change the status of an order
//	@Description	processing to shipped or cancelled, shipped to delivered.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string						true	"Order id"	Format(uuid)
//	@Param			status		body		servers.OrderStatusUpdate	true	"Target status"
//	@Success		200			{object}	servers.Order
//	@Failure		400			{object}	servers.Error
//	@Failure		404			{object}	servers.Error
//	@Failure		409			{object}	servers.Error
//	@Router			/orders/{order_id}/status [put]
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := toKernelUUID("order id", orderId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, strings.TrimSpace(request.Status))
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.useCases.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.Info("order status changed", "order", updated.Number(), "status", updated.Status().String())
	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

func orderOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrPaymentDeclined):
		return metrics.OutcomeDeclined
	case errors.Is(err, commands.ErrOrderRejected):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
