package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates.
// A menu is stored together with its menu product lines.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists the menu and the price snapshots of its lines.
	Update(ctx context.Context, aggregate *menu.Menu) error

	// Get returns an errs.ObjectNotFoundError when no menu has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs returns the menus found among ids; unknown identifiers are skipped.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAllByProductID returns every menu with a line referencing the product.
	GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error)

	// GetAllDisplayed returns the menus guests can currently order.
	GetAllDisplayed(ctx context.Context) ([]*menu.Menu, error)
}
