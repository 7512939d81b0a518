package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so concurrent requests never
// share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the order writes of one command into a single database transaction.
//
// Callers pair Begin with a deferred Rollback and finish with Commit:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// uow.OrderRepository() ...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback does nothing after Commit or without Begin.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction opened by Begin.
	OrderRepository() OrderRepository
}
