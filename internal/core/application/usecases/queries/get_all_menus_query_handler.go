package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllMenusQueryHandler struct {
	db *gorm.DB
}

func NewGetAllMenusQueryHandler(db *gorm.DB) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{db: db}
}

// Handle returns menus sorted by name. Lines keep the order they were created in.
func (h GetAllMenusQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenusQuery,
) ([]GetAllMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus := make([]GetAllMenusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			displayed,
			menu_group_id
		FROM menus
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	positions := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id, groupID uuid.UUID
			menu        GetAllMenusQueryResponse
		)
		if err = rows.Scan(&id, &menu.Name, &menu.Price, &menu.Displayed, &groupID); err != nil {
			return nil, err
		}
		menu.ID = kernel.RestoreUUID(id)
		menu.MenuGroupID = kernel.RestoreUUID(groupID)
		menu.Products = make([]MenuProductResponse, 0)

		positions[id] = len(menus)
		ids = append(ids, id)
		menus = append(menus, menu)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return menus, nil
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_id,
			product_id,
			quantity,
			price
		FROM menu_products
		WHERE menu_id IN ?
		ORDER BY menu_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			id, menuID, productID uuid.UUID
			line                  MenuProductResponse
		)
		if err = lineRows.Scan(&id, &menuID, &productID, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		line.ID = kernel.RestoreUUID(id)
		line.ProductID = kernel.RestoreUUID(productID)

		i, ok := positions[menuID]
		if !ok {
			continue
		}
		menus[i].Products = append(menus[i].Products, line)
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
