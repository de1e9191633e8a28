package commands

import (
	"context"
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

type CreateOrderTableCommand struct {
	name  string
	guard guard.ConstructorGuard
}

func NewCreateOrderTableCommand(name string) (CreateOrderTableCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateOrderTableCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateOrderTableCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

func (c CreateOrderTableCommand) Name() string {
	return c.name
}

// CreateOrderTableCommandHandler stores a new empty table.
type CreateOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewCreateOrderTableCommandHandler(uowFactory OrderTableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderTableCommandHandler) Handle(ctx context.Context, cmd CreateOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	table, err := ordertable.NewOrderTable(kernel.NewUUID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderTableRepository().Add(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
