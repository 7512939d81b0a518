package services_test

import (
	"testing"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryEngine_Catalog(t *testing.T) {
	engine := services.NewDeliveryEngine(newTestDirectory(t))

	t.Run("should list reference data", func(t *testing.T) {
		assert.Len(t, engine.ListAirports(), 2)
		assert.Equal(t, []string{"HOUSTON IAH", "DALLAS", "CHICAGO", "NEW YORK"}, engine.ListRegions())
		assert.Equal(t, delivery.AllItemTypes(), engine.ListItemTypes())
	})

	t.Run("should return allowed quantities per method", func(t *testing.T) {
		pickup, err := engine.AllowedQuantities("pickup")
		require.NoError(t, err)
		assert.Equal(t, []int{8, 12, 16, 20, 24}, pickup)

		_, err = engine.AllowedQuantities("drone")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should price directly", func(t *testing.T) {
		price, err := engine.PickupPrice("Ratol", 12)
		require.NoError(t, err)
		assert.Equal(t, "384.00", price.String())

		_, err = engine.PickupPrice("ratol", 12)
		require.Error(t, err)

		price, err = engine.DoorstepPrice("DALLAS", 2)
		require.NoError(t, err)
		assert.Equal(t, "59.99", price.String())
	})

	t.Run("should resolve zip codes", func(t *testing.T) {
		res := engine.ResolveZip("60601", "HOUSTON IAH")

		assert.False(t, res.IsValid())
		assert.Equal(t, "Zipcode 60601 belongs to CHICAGO, not HOUSTON IAH", res.Reason())
		assert.True(t, engine.ResolveZip("75201", "DALLAS").IsValid())
	})
}

func TestDeliveryEngine_QuoteOrder(t *testing.T) {
	engine := services.NewDeliveryEngine(newTestDirectory(t))

	t.Run("should reprice doorstep for special region", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method:  "doorstep",
			Items:   []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}, {ItemType: "Ratol", Quantity: 2}},
			Region:  "HOUSTON IAH",
			Zipcode: "77002",
		})

		require.True(t, quote.IsValid(), quote.Reason())
		assert.Equal(t, "119.99", quote.Price().String())
		assert.Equal(t, 4, quote.Boxes())
	})

	t.Run("should keep standard price without region", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method: "doorstep",
			Items:  []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}},
		})

		require.True(t, quote.IsValid())
		assert.Equal(t, "69.99", quote.Price().String())
	})

	t.Run("should reprice by region when zip is absent", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method: "doorstep",
			Items:  []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}},
			Region: "DALLAS",
		})

		require.True(t, quote.IsValid())
		assert.Equal(t, "59.99", quote.Price().String())
	})

	t.Run("should reject zip outside claimed region", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method:  "doorstep",
			Items:   []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}},
			Region:  "CHICAGO",
			Zipcode: "10001",
		})

		assert.False(t, quote.IsValid())
		assert.Equal(t, "Zipcode 10001 belongs to NEW YORK, not CHICAGO", quote.Reason())
		assert.True(t, quote.Price().IsZero())
	})

	t.Run("should reject unknown region", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method: "doorstep",
			Items:  []services.QuoteItem{{ItemType: "Sindhri", Quantity: 2}},
			Region: "BOSTON",
		})

		assert.Equal(t, "Region BOSTON is not available for doorstep delivery", quote.Reason())
	})

	t.Run("should report rule violations before destination checks", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method:  "doorstep",
			Items:   []services.QuoteItem{{ItemType: "Sindhri", Quantity: 3}},
			Region:  "BOSTON",
			Zipcode: "00000",
		})

		assert.Equal(t, "Doorstep orders must be either 2 or 4 boxes in total", quote.Reason())
	})

	t.Run("should accept known airport", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method:      "pickup",
			Items:       []services.QuoteItem{{ItemType: "Ratol", Quantity: 8}},
			AirportCode: "dfw",
		})

		require.True(t, quote.IsValid())
		assert.Equal(t, "264.00", quote.Price().String())
	})

	t.Run("should reject unknown airport", func(t *testing.T) {
		quote := engine.QuoteOrder(services.QuoteRequest{
			Method:      "pickup",
			Items:       []services.QuoteItem{{ItemType: "Ratol", Quantity: 8}},
			AirportCode: "JFK",
		})

		assert.Equal(t, "Invalid airport code: JFK", quote.Reason())
	})

	t.Run("should agree with ValidateOrder on structure", func(t *testing.T) {
		req := services.QuoteRequest{
			Method: "pickup",
			Items:  []services.QuoteItem{{ItemType: "Langhra", Quantity: 16}},
		}

		assert.Equal(t,
			engine.ValidateOrder("pickup", []string{"Langhra"}, []int{16}),
			engine.QuoteOrder(req))
	})
}
