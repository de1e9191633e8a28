package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeMenuPriceCommandIsNotConstructed = errors.New(
	"ChangeMenuPriceCommand must be created via NewChangeMenuPriceCommand constructor",
)

type ChangeMenuPriceCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID
	price  kernel.Price

	guard guard.ConstructorGuard
}

func NewChangeMenuPriceCommand(menuID kernel.UUID, price *decimal.Decimal) (ChangeMenuPriceCommand, error) {
	p, priceErr := kernel.RequirePrice(price)
	if err := errors.Join(priceErr, menuID.Validate()); err != nil {
		return ChangeMenuPriceCommand{}, err
	}

	return ChangeMenuPriceCommand{
		menuID: menuID,
		price:  p,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeMenuPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuPriceCommandIsNotConstructed)
}

func (c ChangeMenuPriceCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c ChangeMenuPriceCommand) Price() kernel.Price {
	return c.price
}
