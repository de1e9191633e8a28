package order

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")

// LineItem is an order line: a menu reference, a quantity and the menu price at
// ordering time. The snapshot never changes after the order is created.
//
// The quantity sign is checked by the order against its Type.
type LineItem struct {
	id       kernel.UUID
	menuID   kernel.UUID
	quantity int64
	price    kernel.Price
	guard    guard.ConstructorGuard
}

func NewLineItem(id kernel.UUID, menuID kernel.UUID, quantity int64, price kernel.Price) (*LineItem, error) {
	li := &LineItem{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		menuID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}

	li.id = id
	li.menuID = menuID
	li.price = price
	return li, nil
}

func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li *LineItem) ID() kernel.UUID {
	return li.id
}

func (li *LineItem) MenuID() kernel.UUID {
	return li.menuID
}

func (li *LineItem) Quantity() int64 {
	return li.quantity
}

func (li *LineItem) Price() kernel.Price {
	return li.price
}

func (li *LineItem) Amount() decimal.Decimal {
	return li.price.Times(li.quantity)
}
