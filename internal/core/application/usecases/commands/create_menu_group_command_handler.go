package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

type CreateMenuGroupCommandHandler struct {
	uowFactory MenuGroupUoWFactory
}

func NewCreateMenuGroupCommandHandler(uowFactory MenuGroupUoWFactory) CreateMenuGroupCommandHandler {
	return CreateMenuGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateMenuGroupCommandHandler) Handle(ctx context.Context, cmd CreateMenuGroupCommand) (*menugroup.MenuGroup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	g, err := menugroup.NewMenuGroup(kernel.NewUUID(), cmd.Name())
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

	if err = uow.MenuGroupRepository().Add(ctx, g); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return g, nil
}
