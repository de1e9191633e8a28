// Package ports defines the contracts between the point-of-sale core and its infrastructure:
// repositories, the unit of work and outbound services.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns an errs.ObjectNotFoundError when no product has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByIDs returns the products found among ids; unknown identifiers are skipped.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
