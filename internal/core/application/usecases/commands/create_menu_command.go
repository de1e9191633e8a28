package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// CreateMenuCommand requests a new menu. Lines are checked by the handler once the
// menu group is known to exist.
//
// Example:
//
//	price := decimal.NewFromInt(19000)
//	cmd, err := NewCreateMenuCommand("Two chickens", &price, true, groupID,
//	    []services.MenuLine{{ProductID: chickenID, Quantity: 2}})
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	name        string
	price       kernel.Price
	displayed   bool
	menuGroupID kernel.UUID
	lines       []services.MenuLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand fails when the price is missing or negative or the menu group id is missing.
func NewCreateMenuCommand(
	name string,
	price *decimal.Decimal,
	displayed bool,
	menuGroupID kernel.UUID,
	lines []services.MenuLine,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		name:      name,
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrice(price),
		cmd.setMenuGroupID(menuGroupID),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	cmd.lines = make([]services.MenuLine, len(lines))
	copy(cmd.lines, lines)
	return cmd, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

func (c CreateMenuCommand) Displayed() bool {
	return c.displayed
}

func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

func (c CreateMenuCommand) Lines() []services.MenuLine {
	lines := make([]services.MenuLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductIDs lists the distinct products referenced by the lines.
func (c CreateMenuCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

func (c *CreateMenuCommand) setPrice(price *decimal.Decimal) error {
	p, err := kernel.RequirePrice(price)
	if err != nil {
		return err
	}
	c.price = p
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	c.menuGroupID = menuGroupID
	return nil
}
