package services_test

import (
	"testing"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) *coverage.Directory {
	t.Helper()
	d, err := coverage.NewDirectory(
		[]coverage.AirportRow{
			{Name: "George Bush Intercontinental", Code: "IAH", Zip: "77032"},
			{Name: "Dallas Fort Worth International", Code: "DFW", Zip: "75261"},
		},
		[]coverage.RegionTable{
			{Key: "HOUSTON IAH 77001", Rows: [][]string{{"77001", "77002"}}},
			{Key: "DALLAS DFW", Rows: [][]string{{"75201.0"}}},
			{Key: "CHICAGO 60601", Rows: [][]string{{"60601", "60602"}}},
			{Key: "NEW YORK 10001", Rows: [][]string{{"10001"}}},
		},
	)
	require.NoError(t, err)
	return d
}

func TestPricingTables_PickupPrice(t *testing.T) {
	pricing := services.NewPricingTables(newTestDirectory(t))

	t.Run("should price premium and standard varieties", func(t *testing.T) {
		ratol, err := pricing.PickupPrice(delivery.Ratol, 8)
		require.NoError(t, err)
		assert.Equal(t, "264.00", ratol.String())

		sindhri, err := pricing.PickupPrice(delivery.Sindhri, 8)
		require.NoError(t, err)
		assert.Equal(t, "256.00", sindhri.String())

		chaunsa, err := pricing.PickupPrice(delivery.Chaunsa, 24)
		require.NoError(t, err)
		assert.Equal(t, "720.00", chaunsa.String())
	})

	t.Run("should be monotone in quantity for every variety", func(t *testing.T) {
		allowed, _ := delivery.Pickup.AllowedQuantities()
		for _, itemType := range delivery.AllItemTypes() {
			prev, err := pricing.PickupPrice(itemType, allowed[0])
			require.NoError(t, err)
			for _, qty := range allowed[1:] {
				next, err := pricing.PickupPrice(itemType, qty)
				require.NoError(t, err)
				assert.False(t, next.LessThan(prev), "%s at %d boxes", itemType, qty)
				prev = next
			}
		}
	})

	t.Run("should reject disallowed quantity", func(t *testing.T) {
		_, err := pricing.PickupPrice(delivery.Sindhri, 10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "10 is not an allowed pickup quantity")
	})

	t.Run("should reject unknown variety", func(t *testing.T) {
		_, err := pricing.PickupPrice("Alphonso", 8)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPricingTables_DoorstepPrice(t *testing.T) {
	pricing := services.NewPricingTables(newTestDirectory(t))

	t.Run("should discount IAH and DFW regions", func(t *testing.T) {
		for _, region := range []string{"HOUSTON IAH", "DALLAS"} {
			two, err := pricing.DoorstepPrice(region, 2)
			require.NoError(t, err)
			assert.Equal(t, "59.99", two.String())

			four, err := pricing.DoorstepPrice(region, 4)
			require.NoError(t, err)
			assert.Equal(t, "119.99", four.String())
		}
	})

	t.Run("should charge standard tier elsewhere", func(t *testing.T) {
		two, err := pricing.DoorstepPrice("CHICAGO", 2)
		require.NoError(t, err)
		assert.Equal(t, "69.99", two.String())

		four, err := pricing.DoorstepPrice("NEW YORK", 4)
		require.NoError(t, err)
		assert.Equal(t, "135.99", four.String())
	})

	t.Run("should reject unknown region", func(t *testing.T) {
		_, err := pricing.DoorstepPrice("BOSTON", 2)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "invalid region")
	})

	t.Run("should reject disallowed quantity", func(t *testing.T) {
		_, err := pricing.DoorstepPrice("CHICAGO", 3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("standard price ignores region", func(t *testing.T) {
		four, err := pricing.StandardDoorstepPrice(4)
		require.NoError(t, err)
		assert.Equal(t, "135.99", four.String())

		_, err = pricing.StandardDoorstepPrice(8)
		require.Error(t, err)
	})
}
