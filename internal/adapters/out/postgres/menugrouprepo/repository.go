package menugrouprepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuGroupRepository implements ports.MenuGroupRepository using GORM.
type GormMenuGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuGroupRepository {
	return &GormMenuGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMenuGroupRepository) Add(ctx context.Context, aggregate *menugroup.MenuGroup) error {
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

// Get reads without locking: menu groups never change after creation.
func (r *GormMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu group", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
