package queries

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllOrderTablesQueryIsNotConstructed = errors.New(
	"GetAllOrderTablesQuery must be created via NewGetAllOrderTablesQuery constructor",
)

type GetAllOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrderTablesQuery() GetAllOrderTablesQuery {
	return GetAllOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderTablesQueryIsNotConstructed)
}

type GetAllOrderTablesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	NumberOfGuests int
	Occupied       bool
}

type GetAllOrderTablesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrderTablesQueryHandler(db *gorm.DB) GetAllOrderTablesQueryHandler {
	return GetAllOrderTablesQueryHandler{db: db}
}

func (h GetAllOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderTablesQuery,
) ([]GetAllOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			number_of_guests,
			occupied
		FROM order_tables
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			resp GetAllOrderTablesQueryResponse
		)
		if err = rows.Scan(&id, &resp.Name, &resp.NumberOfGuests, &resp.Occupied); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = tableID

		tables = append(tables, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
