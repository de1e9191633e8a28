package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Line items never change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns an errs.ObjectNotFoundError when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsForTableWithStatusNot reports whether the table has an order whose status
	// differs from status. Completing an eat-in order uses it with order.Completed to
	// find out whether the table still serves another open order.
	ExistsForTableWithStatusNot(ctx context.Context, tableID kernel.UUID, status order.Status) (bool, error)
}
