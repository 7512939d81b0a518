package http

import (
	"net/http"
	"strings"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetAirports godoc
//
//	@Summary		List pickup airports
//	@Description	Airports where pickup orders can be collected.
//	@Tags			delivery
//	@Produce		json
//	@Success		200	{array}	servers.Airport
//	@Router			/delivery/airports [get]
func (s *Server) GetAirports(ctx echo.Context) error {
	airports := s.engine.ListAirports()

	response := make([]servers.Airport, len(airports))
	for i, airport := range airports {
		response[i] = servers.Airport{
			Code: airport.Code(),
			Name: airport.Name(),
			Zip:  airport.Zip(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetRegions godoc
//
//	@Summary	List doorstep regions
//	@Tags		delivery
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/delivery/regions [get]
func (s *Server) GetRegions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.engine.ListRegions())
}

// GetItemTypes godoc
//
//	@Summary	List mango varieties
//	@Tags		delivery
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/delivery/item-types [get]
func (s *Server) GetItemTypes(ctx echo.Context) error {
	itemTypes := s.engine.ListItemTypes()

	response := make([]string, len(itemTypes))
	for i, itemType := range itemTypes {
		response[i] = itemType.String()
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAllowedQuantities godoc
//
//	@Summary	Allowed box totals
//	@Tags		delivery
//	@Produce	json
//	@Param		delivery_method	path		string	true	"Delivery method"	Enums(pickup, doorstep)
//	@Success	200				{object}	servers.AllowedQuantities
//	@Failure	400				{object}	servers.Error
//	@Router		/delivery/allowed-quantities/{delivery_method} [get]
func (s *Server) GetAllowedQuantities(ctx echo.Context, deliveryMethod string) error {
	quantities, err := s.engine.AllowedQuantities(deliveryMethod)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery type: "+deliveryMethod)
	}

	return ctx.JSON(http.StatusOK, servers.AllowedQuantities{
		DeliveryMethod: deliveryMethod,
		Quantities:     quantities,
	})
}

// ValidateZipcode godoc
//
//	@Summary	Check a ZIP code against a region
//	@Tags		delivery
//	@Produce	json
//	@Param		zipcode	query		string	true	"ZIP code"
//	@Param		region	query		string	true	"Region name"
//	@Success	200		{object}	servers.ZipcodeValidation
//	@Failure	400		{object}	servers.Error
//	@Router		/delivery/validate-zipcode [get]
func (s *Server) ValidateZipcode(ctx echo.Context, params servers.ValidateZipcodeParams) error {
	zipcode := strings.TrimSpace(params.Zipcode)
	region := strings.TrimSpace(params.Region)
	if zipcode == "" || region == "" {
		return errorJSON(ctx, http.StatusBadRequest, "zipcode and region are required")
	}

	resolution := s.engine.ResolveZip(zipcode, region)

	response := servers.ZipcodeValidation{Valid: resolution.IsValid()}
	if !resolution.IsValid() {
		response.Message = stringPtr(resolution.Reason())
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPrice godoc
//
//	@Summary		Price of a box total
//	@Description	Pickup prices depend on the item type, doorstep prices on the region.
//	@Tags			delivery
//	@Produce		json
//	@Param			delivery_method	query		string	true	"Delivery method"
//	@Param			quantity		query		int		true	"Total number of boxes"
//	@Param			item_type		query		string	false	"Item type, required for pickup"
//	@Param			region			query		string	false	"Region, required for doorstep"
//	@Success		200				{object}	servers.Price
//	@Failure		400				{object}	servers.Error
//	@Router			/delivery/price [get]
func (s *Server) GetPrice(ctx echo.Context, params servers.GetPriceParams) error {
	method, err := delivery.ParseMethod(params.DeliveryMethod)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery type: "+params.DeliveryMethod)
	}

	response := servers.Price{
		DeliveryMethod: method.String(),
		Quantity:       params.Quantity,
	}

	switch method {
	case delivery.Pickup:
		itemType := strings.TrimSpace(valueOf(params.ItemType))
		if itemType == "" {
			return errorJSON(ctx, http.StatusBadRequest, "item_type is required for pickup prices")
		}
		price, priceErr := s.engine.PickupPrice(itemType, params.Quantity)
		if priceErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, priceErr.Error())
		}
		response.ItemType = stringPtr(itemType)
		response.Price = price.Float64()
	default:
		region := strings.TrimSpace(valueOf(params.Region))
		if region == "" {
			return errorJSON(ctx, http.StatusBadRequest, "region is required for doorstep prices")
		}
		price, priceErr := s.engine.DoorstepPrice(region, params.Quantity)
		if priceErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, priceErr.Error())
		}
		response.Region = stringPtr(region)
		response.Price = price.Float64()
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteOrder godoc
//
//	@Summary		Validate and price a proposed order
//	@Description	Invalid orders are reported in the body, not as errors.
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		servers.QuoteRequest	true	"Proposed order"
//	@Success		200		{object}	servers.Quote
//	@Failure		400		{object}	servers.Error
//	@Router			/delivery/quote [post]
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var request servers.QuoteOrderJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	quote := s.engine.QuoteOrder(services.QuoteRequest{
		Method:      strings.TrimSpace(request.DeliveryMethod),
		Items:       toQuoteItems(request.Items),
		Region:      strings.TrimSpace(valueOf(request.Region)),
		Zipcode:     strings.TrimSpace(valueOf(request.Zipcode)),
		AirportCode: strings.TrimSpace(valueOf(request.AirportCode)),
	})
	s.observeQuote(request.DeliveryMethod, quote.IsValid())

	return ctx.JSON(http.StatusOK, toQuoteResponse(quote))
}

func (s *Server) observeQuote(method string, valid bool) {
	if s.metrics != nil {
		s.metrics.ObserveQuote(method, valid)
	}
}

func (s *Server) observeOrder(method, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveOrder(method, outcome)
	}
}
