package delivery

import "mangoshop/internal/core/domain/model/kernel"

// Quote is the engine's verdict on a proposed order.
// A valid quote has a price and the total number of boxes; an invalid quote has a
// reason and a zero price.
type Quote struct {
	valid  bool
	reason string
	price  kernel.Money
	boxes  int
}

// ValidQuote returns an accepted quote for boxes boxes at price.
func ValidQuote(price kernel.Money, boxes int) Quote {
	return Quote{valid: true, price: price, boxes: boxes}
}

// InvalidQuote returns a rejected quote carrying reason.
func InvalidQuote(reason string) Quote {
	return Quote{reason: reason}
}

func (q Quote) IsValid() bool {
	return q.valid
}

// Reason is empty for valid quotes.
func (q Quote) Reason() string {
	return q.reason
}

// Price is zero for invalid quotes.
func (q Quote) Price() kernel.Money {
	return q.price
}

// Boxes is the total number of boxes after zero quantity lines were dropped.
func (q Quote) Boxes() int {
	return q.boxes
}

// WithPrice re-prices a valid quote. Invalid quotes are returned unchanged.
func (q Quote) WithPrice(price kernel.Money) Quote {
	if !q.valid {
		return q
	}
	q.price = price
	return q
}
