package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Price

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(productID kernel.UUID, price *decimal.Decimal) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	p, priceErr := kernel.RequirePrice(price)
	if err := errors.Join(productID.Validate(), priceErr); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	cmd.productID = productID
	cmd.price = p
	return cmd, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() kernel.Price {
	return c.price
}
