package menurepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
// Menus are always loaded together with their lines.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
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

// Update stores the menu row and the price snapshot of each line. Lines are fixed
// at creation; only their prices change.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&MenuDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":      dto.Name,
			"price":     dto.Price,
			"displayed": dto.Displayed,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu", aggregate.ID().String())
	}

	for _, line := range dto.MenuProducts {
		err := db.Model(&MenuProductDTO{}).
			Where("id = ? AND menu_id = ?", line.ID, dto.ID).
			Update("price", line.Price).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get locks the menu row until the surrounding transaction ends.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("MenuProducts").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	if len(ids) == 0 {
		return []*menu.Menu{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.find(r.db.WithContext(ctx).Where("id IN ?", raw))
}

// GetAllByProductID locks the returned menus; their lines are about to be repriced.
func (r *GormMenuRepository) GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	lines := db.Model(&MenuProductDTO{}).Select("menu_id").Where("product_id = ?", productID.Bytes())

	return r.find(db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id IN (?)", lines))
}

// GetAllDisplayed locks the returned menus.
func (r *GormMenuRepository) GetAllDisplayed(ctx context.Context) ([]*menu.Menu, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("displayed = ?", true))
}

func (r *GormMenuRepository) find(query *gorm.DB) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := query.Preload("MenuProducts").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}
