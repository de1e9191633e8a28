package commands

import (
	"errors"
	"strings"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

type CreateMenuGroupCommand struct {
	name  string
	guard guard.ConstructorGuard
}

func NewCreateMenuGroupCommand(name string) (CreateMenuGroupCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateMenuGroupCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateMenuGroupCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

func (c CreateMenuGroupCommand) Name() string {
	return c.name
}
