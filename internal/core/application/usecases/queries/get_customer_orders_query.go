// Package queries contains read-only operations that report system state.
// Query handlers read straight from the database with raw SQL and never load aggregates.
package queries

import (
	"errors"
	"strings"
	"time"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/pkg/errs"
	"mangoshop/internal/pkg/guard"
)

const (
	// DefaultOrdersPageSize is used when no limit is given.
	DefaultOrdersPageSize = 100

	// MaxOrdersPageSize caps a single page of customer orders.
	MaxOrdersPageSize = 100

	dateLayout = "2006-01-02"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// CustomerOrdersFilter holds the optional listing parameters as received from a caller.
//
// Filters that cannot be understood are ignored rather than rejected: an unknown status or
// item type lists every order, an unparsable date leaves that side of the range open.
// Dates are either YYYY-MM-DD, where To covers the whole day, or RFC 3339 timestamps.
type CustomerOrdersFilter struct {
	Status    string
	ItemType  string
	From      string
	To        string
	SortBy    string
	Ascending bool
	Skip      int
	Limit     int
}

// GetCustomerOrdersQuery lists the orders a customer placed.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID, CustomerOrdersFilter{
//	    Status: "processing",
//	    SortBy: "total_amount",
//	})
//	orders, err := handler.Handle(ctx, query)
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	status     order.Status
	itemType   delivery.ItemType
	from       *time.Time
	to         *time.Time
	sortColumn string
	ascending  bool
	skip       int
	limit      int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery normalizes filter. Only the customer id is mandatory.
// Sorting defaults to newest first; SortBy accepts created_at, total_amount and status.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, filter CustomerOrdersFilter) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	query := GetCustomerOrdersQuery{
		customerID: customerID,
		sortColumn: sortColumn(filter.SortBy),
		ascending:  filter.Ascending,
		skip:       max(filter.Skip, 0),
		limit:      filter.Limit,
		guard:      guard.NewConstructorGuard(),
	}

	if status, err := order.ParseStatus(strings.ToLower(strings.TrimSpace(filter.Status))); err == nil {
		query.status = status
	}
	if itemType, err := delivery.ParseItemType(strings.TrimSpace(filter.ItemType)); err == nil {
		query.itemType = itemType
	}
	if from, ok := parseDate(filter.From, false); ok {
		query.from = &from
	}
	if to, ok := parseDate(filter.To, true); ok {
		query.to = &to
	}
	if query.limit <= 0 || query.limit > MaxOrdersPageSize {
		query.limit = DefaultOrdersPageSize
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the status filter, order.Unknown when orders of every status are listed.
func (q GetCustomerOrdersQuery) Status() order.Status {
	return q.status
}

// ItemType returns the item type filter, empty when not filtering.
func (q GetCustomerOrdersQuery) ItemType() delivery.ItemType {
	return q.itemType
}

// From returns the inclusive lower bound of created_at, nil when open.
func (q GetCustomerOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper bound of created_at, nil when open.
func (q GetCustomerOrdersQuery) To() *time.Time {
	return q.to
}

func (q GetCustomerOrdersQuery) SortColumn() string {
	return q.sortColumn
}

func (q GetCustomerOrdersQuery) Ascending() bool {
	return q.ascending
}

func (q GetCustomerOrdersQuery) Skip() int {
	return q.skip
}

func (q GetCustomerOrdersQuery) Limit() int {
	return q.limit
}

func sortColumn(sortBy string) string {
	switch strings.TrimSpace(sortBy) {
	case "total_amount":
		return "total_amount"
	case "status":
		return "status"
	default:
		return "created_at"
	}
}

func parseDate(value string, endOfDay bool) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Microsecond)
	}
	return t, true
}

// CustomerOrderItem is one priced line of a listed order.
type CustomerOrderItem struct {
	ItemType  string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

// CustomerOrderResponse is the listing view of an order.
// AirportCode is set for pickup orders, Region and Zipcode for doorstep orders.
type CustomerOrderResponse struct {
	ID                   kernel.UUID
	Number               string
	DeliveryMethod       string
	Status               string
	TotalAmount          kernel.Money
	ItemTypes            []string
	AirportCode          string
	Region               string
	Zipcode              string
	PaymentTransactionID string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Items                []CustomerOrderItem
}
