package coverage

import (
	"errors"
	"strings"

	"mangoshop/internal/pkg/errs"
)

// AirportRow is one raw row of the airport directory as read from the source.
// Fields may be blank; blank rows are dropped by NewDirectory.
type AirportRow struct {
	Name string
	Code string
	Zip  string
}

// Airport is a pickup location.
type Airport struct {
	name string
	code string
	zip  string
}

// NewAirport requires all three fields to be non-blank after trimming.
func NewAirport(name, code, zip string) (Airport, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	zip = CanonicalCell(zip)

	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("airport name"))
	}
	if code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("airport code"))
	}
	if zip == "" {
		errList = append(errList, errs.NewValueIsRequiredError("airport zip"))
	}
	if err := errors.Join(errList...); err != nil {
		return Airport{}, err
	}

	return Airport{name: name, code: code, zip: zip}, nil
}

func (a Airport) Name() string {
	return a.name
}

func (a Airport) Code() string {
	return a.code
}

func (a Airport) Zip() string {
	return a.zip
}
