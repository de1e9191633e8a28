package ordertablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderTableRepository implements ports.OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderTableRepository {
	return &GormOrderTableRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *ordertable.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column; a cleared table stores zero guests and false.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *ordertable.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "number_of_guests", "occupied").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get locks the table row until the surrounding transaction ends.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
