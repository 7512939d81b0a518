package services_test

import (
	"math"
	"testing"

	"mangoshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestOrderRuleValidator_Validate(t *testing.T) {
	validator := services.NewOrderRuleValidator(services.NewPricingTables(newTestDirectory(t)))

	tests := []struct {
		name       string
		method     string
		itemTypes  []string
		quantities []int
		wantValid  bool
		wantReason string
		wantPrice  string
	}{
		{
			name:       "mismatched lengths",
			method:     "pickup",
			itemTypes:  []string{"Sindhri", "Ratol"},
			quantities: []int{8},
			wantReason: "Mismatch between item types and quantities",
		},
		{
			name:       "unknown item type",
			method:     "pickup",
			itemTypes:  []string{"Alphonso"},
			quantities: []int{8},
			wantReason: "Invalid item type: Alphonso",
		},
		{
			name:       "unknown item type on a zero line is dropped",
			method:     "pickup",
			itemTypes:  []string{"Alphonso", "Ratol"},
			quantities: []int{0, 8},
			wantValid:  true,
			wantPrice:  "264.00",
		},
		{
			name:       "item type checked before method",
			method:     "drone",
			itemTypes:  []string{"Alphonso"},
			quantities: []int{2},
			wantReason: "Invalid item type: Alphonso",
		},
		{
			name:       "unknown method",
			method:     "drone",
			itemTypes:  []string{"Sindhri"},
			quantities: []int{2},
			wantReason: "Invalid delivery type: drone",
		},
		{
			name:       "pickup below minimum",
			method:     "pickup",
			itemTypes:  []string{"Sindhri"},
			quantities: []int{4},
			wantReason: "Pickup orders require a minimum of 8 boxes",
		},
		{
			name:       "pickup with no lines",
			method:     "pickup",
			wantReason: "Pickup orders require a minimum of 8 boxes",
		},
		{
			name:       "pickup mixing varieties",
			method:     "pickup",
			itemTypes:  []string{"Sindhri", "Ratol"},
			quantities: []int{4, 4},
			wantReason: "Pickup orders cannot mix different item types",
		},
		{
			name:       "pickup total not allowed",
			method:     "pickup",
			itemTypes:  []string{"Sindhri"},
			quantities: []int{10},
			wantReason: "Pickup orders must be one of these quantities: [8, 12, 16, 20, 24]",
		},
		{
			name:       "pickup repeated lines of one variety",
			method:     "pickup",
			itemTypes:  []string{"Chaunsa", "Chaunsa"},
			quantities: []int{4, 8},
			wantValid:  true,
			wantPrice:  "372.00",
		},
		{
			name:       "pickup ratol",
			method:     "pickup",
			itemTypes:  []string{"Ratol"},
			quantities: []int{24},
			wantValid:  true,
			wantPrice:  "744.00",
		},
		{
			name:       "doorstep total of three",
			method:     "doorstep",
			itemTypes:  []string{"Sindhri"},
			quantities: []int{3},
			wantReason: "Doorstep orders must be either 2 or 4 boxes in total",
		},
		{
			name:       "doorstep three varieties",
			method:     "doorstep",
			itemTypes:  []string{"Sindhri", "Langhra", "Ratol"},
			quantities: []int{2, 1, 1},
			wantReason: "Doorstep orders can mix at most 2 different item types",
		},
		{
			name:       "doorstep two varieties",
			method:     "doorstep",
			itemTypes:  []string{"Sindhri", "Ratol"},
			quantities: []int{2, 2},
			wantValid:  true,
			wantPrice:  "135.99",
		},
		{
			name:       "doorstep two boxes",
			method:     "doorstep",
			itemTypes:  []string{"Langhra", "Ratol", "Chaunsa"},
			quantities: []int{1, 1, 0},
			wantValid:  true,
			wantPrice:  "69.99",
		},
		{
			name:       "pickup quantities that would wrap to eight",
			method:     "pickup",
			itemTypes:  []string{"Sindhri", "Sindhri", "Sindhri"},
			quantities: []int{math.MaxInt, math.MaxInt, 10},
			wantReason: "Pickup orders must be one of these quantities: [8, 12, 16, 20, 24]",
		},
		{
			name:       "doorstep quantities that would wrap to two",
			method:     "doorstep",
			itemTypes:  []string{"Sindhri", "Ratol"},
			quantities: []int{math.MaxInt, math.MaxInt, 4},
			wantReason: "Doorstep orders must be either 2 or 4 boxes in total",
		},
		{
			name:       "negative quantities are dropped",
			method:     "doorstep",
			itemTypes:  []string{"Langhra", "Ratol"},
			quantities: []int{2, -5},
			wantValid:  true,
			wantPrice:  "69.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := validator.Validate(tt.method, tt.itemTypes, tt.quantities)

			assert.Equal(t, tt.wantValid, quote.IsValid())
			assert.Equal(t, tt.wantReason, quote.Reason())
			if tt.wantValid {
				assert.Equal(t, tt.wantPrice, quote.Price().String())
			} else {
				assert.True(t, quote.Price().IsZero())
			}
		})
	}
}

func TestOrderRuleValidator_PickupTotals(t *testing.T) {
	validator := services.NewOrderRuleValidator(services.NewPricingTables(newTestDirectory(t)))
	allowed := map[int]bool{8: true, 12: true, 16: true, 20: true, 24: true}

	for total := 0; total <= 30; total++ {
		quote := validator.Validate("pickup", []string{"Langhra"}, []int{total})
		assert.Equal(t, allowed[total], quote.IsValid(), "total %d", total)
	}
}

func TestOrderRuleValidator_IsIdempotent(t *testing.T) {
	validator := services.NewOrderRuleValidator(services.NewPricingTables(newTestDirectory(t)))
	itemTypes := []string{"Sindhri", "Ratol"}
	quantities := []int{2, 2}

	first := validator.Validate("doorstep", itemTypes, quantities)
	second := validator.Validate("doorstep", itemTypes, quantities)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Sindhri", "Ratol"}, itemTypes)
	assert.Equal(t, []int{2, 2}, quantities)
}
