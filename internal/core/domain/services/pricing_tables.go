package services

import (
	"errors"
	"fmt"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/pkg/errs"
)

// ErrInvalidRegion is the cause of the error returned for doorstep prices in a region
// that no region table defines.
var ErrInvalidRegion = errors.New("invalid region")

var (
	ratolPickupPrices = map[int]kernel.Money{
		8:  kernel.MustMoney("264"),
		12: kernel.MustMoney("384"),
		16: kernel.MustMoney("496"),
		20: kernel.MustMoney("620"),
		24: kernel.MustMoney("744"),
	}

	standardPickupPrices = map[int]kernel.Money{
		8:  kernel.MustMoney("256"),
		12: kernel.MustMoney("372"),
		16: kernel.MustMoney("480"),
		20: kernel.MustMoney("600"),
		24: kernel.MustMoney("720"),
	}

	specialDoorstepPrices = map[int]kernel.Money{
		2: kernel.MustMoney("59.99"),
		4: kernel.MustMoney("119.99"),
	}

	standardDoorstepPrices = map[int]kernel.Money{
		2: kernel.MustMoney("69.99"),
		4: kernel.MustMoney("135.99"),
	}
)

// RegionLookup finds a coverage region by its cleaned name.
// *coverage.Directory implements it.
type RegionLookup interface {
	Region(name string) (coverage.Region, bool)
}

// PricingTables holds the static price lists.
//
// Pickup prices depend on the item type and the total number of boxes: Ratol is the
// premium variety, every other variety shares the standard list. Doorstep prices depend on
// the destination region and the number of boxes: regions keyed by IAH or DFW are in the
// discounted tier.
type PricingTables struct {
	regions RegionLookup
}

// NewPricingTables creates pricing tables that resolve doorstep regions through regions.
func NewPricingTables(regions RegionLookup) PricingTables {
	return PricingTables{regions: regions}
}

// PickupPrice returns the flat price of quantity boxes of itemType collected at an airport.
//
// Returns:
//   - a ValueIsInvalidError when itemType is unknown or quantity is not an allowed pickup total
func (p PricingTables) PickupPrice(itemType delivery.ItemType, quantity int) (kernel.Money, error) {
	if err := itemType.Validate(); err != nil {
		return kernel.ZeroMoney, err
	}
	if err := checkQuantity(delivery.Pickup, quantity); err != nil {
		return kernel.ZeroMoney, err
	}

	if itemType == delivery.Ratol {
		return ratolPickupPrices[quantity], nil
	}
	return standardPickupPrices[quantity], nil
}

// DoorstepPrice returns the price of quantity boxes shipped to region.
//
// Returns:
//   - an ObjectNotFoundError caused by ErrInvalidRegion when the region is unknown
//   - a ValueIsInvalidError when quantity is not an allowed doorstep total
func (p PricingTables) DoorstepPrice(region string, quantity int) (kernel.Money, error) {
	r, ok := p.regions.Region(region)
	if !ok {
		return kernel.ZeroMoney, errs.NewObjectNotFoundErrorWithCause("region", region, ErrInvalidRegion)
	}
	if err := checkQuantity(delivery.Doorstep, quantity); err != nil {
		return kernel.ZeroMoney, err
	}

	if r.IsSpecialPricing() {
		return specialDoorstepPrices[quantity], nil
	}
	return standardDoorstepPrices[quantity], nil
}

// StandardDoorstepPrice is the region independent doorstep price used before a
// destination region is known.
func (p PricingTables) StandardDoorstepPrice(quantity int) (kernel.Money, error) {
	if err := checkQuantity(delivery.Doorstep, quantity); err != nil {
		return kernel.ZeroMoney, err
	}
	return standardDoorstepPrices[quantity], nil
}

func checkQuantity(method delivery.Method, quantity int) error {
	if method.AllowsQuantity(quantity) {
		return nil
	}
	allowed, _ := method.AllowedQuantities()
	return errs.NewValueIsInvalidErrorWithCause(
		"quantity", fmt.Errorf("%d is not an allowed %s quantity %v", quantity, method, allowed))
}
