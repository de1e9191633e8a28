// Package postgres implements the unit of work and the repositories of the point-of-sale
// core on PostgreSQL through GORM.
//
// A unit of work wraps one GORM transaction. Repositories obtained from it after Begin
// run inside that transaction; aggregates loaded for mutation are read with
// SELECT ... FOR UPDATE, so concurrent operations on the same order, menu or table
// serialize in the database.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	// ...
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/ordertablerepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written through a unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// CommitHook runs after a successful commit with every aggregate the transaction wrote.
type CommitHook func(ctx context.Context, written []TrackedAggregate)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database handle.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	hooks []CommitHook
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB, hooks ...CommitHook) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, hooks: hooks}
}

// Create produces a fresh unit of work. Instances are not safe for concurrent use.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		hooks:             f.hooks,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written during it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	hooks             []CommitHook
	trackedAggregates []TrackedAggregate
}

// Begin starts the transaction. A second call on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	written := uow.TrackedAggregates()
	for _, hook := range uow.hooks {
		hook(ctx, written)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active, which
// is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuGroupRepository() ports.MenuGroupRepository {
	return menugrouprepo.NewGormMenuGroupRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return ordertablerepo.NewGormOrderTableRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since the transaction began.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	written := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(written, uow.trackedAggregates)
	return written
}

// conn returns the active transaction, or the plain connection outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
