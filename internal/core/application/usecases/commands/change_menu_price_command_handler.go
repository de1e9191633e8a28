package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
)

// ChangeMenuPriceCommandHandler reprices a menu against its existing line snapshots.
// Products are not looked up again.
type ChangeMenuPriceCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewChangeMenuPriceCommandHandler(uowFactory MenuUoWFactory) ChangeMenuPriceCommandHandler {
	return ChangeMenuPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeMenuPriceCommandHandler) Handle(ctx context.Context, cmd ChangeMenuPriceCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return updateMenu(ctx, h.uowFactory, cmd.MenuID(), func(m *menu.Menu) error {
		return m.ChangePrice(cmd.Price())
	})
}
