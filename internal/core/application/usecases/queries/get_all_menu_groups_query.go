package queries

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllMenuGroupsQueryIsNotConstructed = errors.New(
	"GetAllMenuGroupsQuery must be created via NewGetAllMenuGroupsQuery constructor",
)

type GetAllMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenuGroupsQuery() GetAllMenuGroupsQuery {
	return GetAllMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuGroupsQueryIsNotConstructed)
}

type GetAllMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}

type GetAllMenuGroupsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllMenuGroupsQueryHandler(db *gorm.DB) GetAllMenuGroupsQueryHandler {
	return GetAllMenuGroupsQueryHandler{db: db}
}

func (h GetAllMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuGroupsQuery,
) ([]GetAllMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetAllMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`SELECT id, name FROM menu_groups ORDER BY name, id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		groups = append(groups, GetAllMenuGroupsQueryResponse{ID: groupID, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
