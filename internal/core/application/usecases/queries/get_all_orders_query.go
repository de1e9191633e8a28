package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists orders, optionally only the ones not yet completed.
type GetAllOrdersQuery struct {
	onlyUncompleted bool
	guard           guard.ConstructorGuard
}

func NewGetAllOrdersQuery(onlyUncompleted bool) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		onlyUncompleted: onlyUncompleted,
		guard:           guard.NewConstructorGuard(),
	}
}

func (q GetAllOrdersQuery) OnlyUncompleted() bool {
	return q.onlyUncompleted
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	Type            order.Type
	Status          order.Status
	OrderedAt       time.Time
	DeliveryAddress string
	OrderTableID    *kernel.UUID
	LineItems       []OrderLineItemResponse
}

type OrderLineItemResponse struct {
	ID       kernel.UUID
	MenuID   kernel.UUID
	Quantity int64
	Price    decimal.Decimal
}
