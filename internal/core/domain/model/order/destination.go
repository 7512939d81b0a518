package order

import (
	"errors"
	"fmt"
	"strings"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/pkg/errs"
)

// Destination is where an order goes. Pickup destinations carry an airport; doorstep
// destinations carry a street address, a region and a ZIP code. The two field sets are
// disjoint.
type Destination struct {
	method delivery.Method

	airportCode string
	airportName string
	airportZip  string

	address string
	region  string
	zip     string
}

// NewPickupDestination builds a pickup destination at a directory airport.
func NewPickupDestination(airport coverage.Airport) (Destination, error) {
	if airport.Code() == "" {
		return Destination{}, errs.NewValueIsRequiredError("airport")
	}
	return Destination{
		method:      delivery.Pickup,
		airportCode: airport.Code(),
		airportName: airport.Name(),
		airportZip:  airport.Zip(),
	}, nil
}

// NewDoorstepDestination requires a non-blank address, region and zip.
func NewDoorstepDestination(address, region, zip string) (Destination, error) {
	d := Destination{
		method:  delivery.Doorstep,
		address: strings.TrimSpace(address),
		region:  strings.TrimSpace(region),
		zip:     strings.TrimSpace(zip),
	}

	var errList []error
	if d.address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	}
	if d.region == "" {
		errList = append(errList, errs.NewValueIsRequiredError("region"))
	}
	if d.zip == "" {
		errList = append(errList, errs.NewValueIsRequiredError("zipcode"))
	}
	if err := errors.Join(errList...); err != nil {
		return Destination{}, err
	}
	return d, nil
}

// RestoreDestination rebuilds a destination from persisted columns without
// consulting the airport directory.
func RestoreDestination(method delivery.Method, airportCode, airportName, airportZip, address, region, zip string) (Destination, error) {
	switch method {
	case delivery.Pickup:
		if airportCode == "" {
			return Destination{}, errs.NewValueIsRequiredError("airport code")
		}
		return Destination{
			method:      delivery.Pickup,
			airportCode: airportCode,
			airportName: airportName,
			airportZip:  airportZip,
		}, nil
	case delivery.Doorstep:
		return NewDoorstepDestination(address, region, zip)
	default:
		return Destination{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery method", fmt.Errorf("%s has no destination", method))
	}
}

func (d Destination) Method() delivery.Method {
	return d.method
}

func (d Destination) AirportCode() string {
	return d.airportCode
}

func (d Destination) AirportName() string {
	return d.airportName
}

func (d Destination) AirportZip() string {
	return d.airportZip
}

func (d Destination) Address() string {
	return d.address
}

func (d Destination) Region() string {
	return d.region
}

func (d Destination) Zip() string {
	return d.zip
}
