package delivery

import (
	"fmt"

	"mangoshop/internal/pkg/errs"
)

// ItemType is a mango variety. Only the values declared below are valid.
type ItemType string

const (
	Sindhri ItemType = "Sindhri"
	Langhra ItemType = "Langhra"
	Chaunsa ItemType = "Chaunsa"
	Ratol   ItemType = "Ratol"
)

// AllItemTypes returns the varieties in catalog order.
func AllItemTypes() []ItemType {
	return []ItemType{Sindhri, Langhra, Chaunsa, Ratol}
}

// ParseItemType matches s exactly (case sensitive) against the catalog.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate rejects values outside the catalog.
func (t ItemType) Validate() error {
	for _, known := range AllItemTypes() {
		if t == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("item type", fmt.Errorf("%q is not a known mango type", string(t)))
}

func (t ItemType) String() string {
	return string(t)
}
