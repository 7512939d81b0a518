package delivery

import (
	"fmt"

	"mangoshop/internal/pkg/errs"
)

// Method is the delivery method of an order. Pickup and Doorstep are mutually
// exclusive and select different rule sets and price tables.
type Method int

const (
	// UnknownMethod catches uninitialized Method values.
	UnknownMethod Method = iota

	// Pickup means the customer collects the boxes at an airport.
	Pickup

	// Doorstep means the boxes are shipped to an address inside a covered region.
	Doorstep
)

// MaxOrderBoxes is the largest total any delivery method allows.
const MaxOrderBoxes = 24

var (
	pickupQuantities   = []int{8, 12, 16, 20, 24}
	doorstepQuantities = []int{2, 4}
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod: "unknown",
		Pickup:        "pickup",
		Doorstep:      "doorstep",
	}
}

// ParseMethod maps the wire names "pickup" and "doorstep" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "pickup":
		return Pickup, nil
	case "doorstep":
		return Doorstep, nil
	default:
		return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
			"delivery method", fmt.Errorf("%q is not a valid delivery method", s))
	}
}

// Validate rejects UnknownMethod and out of range values.
func (m Method) Validate() error {
	if m != Pickup && m != Doorstep {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery method", fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the wire name of the method.
func (m Method) String() string {
	if s, ok := getMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// AllowedQuantities returns the total box counts an order may have under m.
// The returned slice is a copy.
func (m Method) AllowedQuantities() ([]int, error) {
	switch m {
	case Pickup:
		return append([]int(nil), pickupQuantities...), nil
	case Doorstep:
		return append([]int(nil), doorstepQuantities...), nil
	default:
		return nil, m.Validate()
	}
}

// AllowsQuantity reports whether total is one of the allowed totals for m.
func (m Method) AllowsQuantity(total int) bool {
	allowed, err := m.AllowedQuantities()
	if err != nil {
		return false
	}
	for _, q := range allowed {
		if q == total {
			return true
		}
	}
	return false
}
