// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductUoW covers product commands. A price change reprices menus too.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		MenuRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// MenuUoW covers menu commands, which resolve menu groups and products.
	MenuUoW interface {
		TxManager
		MenuGroupRepoFactory
		ProductRepoFactory
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderTableUoW covers table commands. Clearing a table looks at its orders.
	OrderTableUoW interface {
		TxManager
		OrderTableRepoFactory
		OrderRepoFactory
	}

	OrderTableUoWFactory interface {
		Create() OrderTableUoW
	}

	// OrderUoW covers the order lifecycle: orders resolve menus on creation and
	// eat-in orders read and release their table.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... apply one transition
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
