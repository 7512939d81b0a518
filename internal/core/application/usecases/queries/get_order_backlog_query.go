package queries

import (
	"errors"

	"mangoshop/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts the orders still waiting to ship.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// BacklogEntry is the number of processing orders of one delivery method.
type BacklogEntry struct {
	DeliveryMethod string
	Count          int64
}

// GetOrderBacklogQueryResponse lists every delivery method, including those with no backlog.
type GetOrderBacklogQueryResponse struct {
	Entries []BacklogEntry
	Total   int64
}
