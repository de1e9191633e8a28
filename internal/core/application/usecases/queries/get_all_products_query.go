// Package queries contains read operations answered straight from the database.
// Handlers bypass the aggregates and return flat response structs.
package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

type GetAllProductsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
}
