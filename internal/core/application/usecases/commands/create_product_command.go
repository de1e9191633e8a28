package commands

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a product. The name is checked against the
// content policy by the handler.
//
// Example:
//
//	price := decimal.NewFromInt(16000)
//	cmd, err := NewCreateProductCommand("Fried chicken", &price)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand fails when the name is blank or the price is missing or negative.
func NewCreateProductCommand(name string, price *decimal.Decimal) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price *decimal.Decimal) error {
	p, err := kernel.RequirePrice(price)
	if err != nil {
		return err
	}
	c.price = p
	return nil
}
