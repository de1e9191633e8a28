package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/guard"
)

var ErrHideOverpricedMenusCommandIsNotConstructed = errors.New(
	"HideOverpricedMenusCommand must be created via NewHideOverpricedMenusCommand constructor",
)

// HideOverpricedMenusCommand sweeps displayed menus and hides the ones whose price
// exceeds their products total. It runs on a schedule.
type HideOverpricedMenusCommand struct {
	guard guard.ConstructorGuard
}

func NewHideOverpricedMenusCommand() HideOverpricedMenusCommand {
	return HideOverpricedMenusCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c HideOverpricedMenusCommand) Validate() error {
	return c.guard.Validate(ErrHideOverpricedMenusCommandIsNotConstructed)
}

type HideOverpricedMenusCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewHideOverpricedMenusCommandHandler(uowFactory MenuUoWFactory) HideOverpricedMenusCommandHandler {
	return HideOverpricedMenusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the menus it hid.
func (h HideOverpricedMenusCommandHandler) Handle(ctx context.Context, cmd HideOverpricedMenusCommand) ([]*menu.Menu, error) {
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

	menuRepo := uow.MenuRepository()

	menus, err := menuRepo.GetAllDisplayed(ctx)
	if err != nil {
		return nil, err
	}

	var hidden []*menu.Menu
	for _, m := range menus {
		if !m.HideIfOverpriced() {
			continue
		}
		if err = menuRepo.Update(ctx, m); err != nil {
			return nil, err
		}
		hidden = append(hidden, m)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return hidden, nil
}
