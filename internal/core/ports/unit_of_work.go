package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
// Repositories returned by the accessors use the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	MenuGroupRepository() MenuGroupRepository
	MenuRepository() MenuRepository
	OrderTableRepository() OrderTableRepository
	OrderRepository() OrderRepository
}
