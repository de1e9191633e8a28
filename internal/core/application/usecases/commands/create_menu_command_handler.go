package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"
)

// CreateMenuCommandHandler builds a menu from current product prices and stores it.
//
// Failure order: missing menu group (not found), empty lines or negative quantities
// or unknown products (invalid argument), price above the products total (invalid argument),
// blank or disallowed name (invalid argument). The content policy is consulted last.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     kernel.ContentPolicy
}

func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory, policy kernel.ContentPolicy) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return nil, err
	}

	products, err := uow.ProductRepository().GetAllByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	lines, err := services.NewMenuComposer().Compose(cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	if err = menu.CheckPrice(cmd.Price(), lines); err != nil {
		return nil, err
	}

	name, err := kernel.NewDisplayName(ctx, cmd.Name(), h.policy)
	if err != nil {
		return nil, err
	}

	m, err := menu.NewMenu(kernel.NewUUID(), name, cmd.Price(), cmd.Displayed(), cmd.MenuGroupID(), lines)
	if err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
