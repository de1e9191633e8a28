package postgres

import (
	"fmt"

	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&ordertablerepo.OrderTableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
