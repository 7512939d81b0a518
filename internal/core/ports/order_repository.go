// Package ports defines the contracts between the core of the shop and its
// infrastructure: order persistence, the payment gateway and the reference data sources.
package ports

import (
	"context"

	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and payment changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by its unique identifier.
	// Returns an errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
