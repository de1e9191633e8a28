package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllMenusQueryIsNotConstructed = errors.New(
	"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
)

type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}

type GetAllMenusQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Price       decimal.Decimal
	Displayed   bool
	MenuGroupID kernel.UUID
	Products    []MenuProductResponse
}

// MenuProductResponse is one menu line with the product price it was last priced at.
type MenuProductResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int64
	Price     decimal.Decimal
}
