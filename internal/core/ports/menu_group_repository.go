package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

// MenuGroupRepository defines the persistence contract for menu groups.
type MenuGroupRepository interface {
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error

	// Get returns an errs.ObjectNotFoundError when no menu group has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)
}
