package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
)

// OrderTableRepository defines the persistence contract for order tables.
type OrderTableRepository interface {
	Add(ctx context.Context, aggregate *ordertable.OrderTable) error
	Update(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Get returns an errs.ObjectNotFoundError when no table has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error)
}
