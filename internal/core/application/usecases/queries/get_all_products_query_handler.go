package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllProductsQueryHandler lists products sorted by name.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetAllProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			name  string
			price decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &price); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, GetAllProductsQueryResponse{
			ID:    productID,
			Name:  name,
			Price: price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
