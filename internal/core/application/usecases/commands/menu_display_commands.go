package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrDisplayMenuCommandIsNotConstructed = errors.New(
		"DisplayMenuCommand must be created via NewDisplayMenuCommand constructor",
	)
	ErrHideMenuCommandIsNotConstructed = errors.New(
		"HideMenuCommand must be created via NewHideMenuCommand constructor",
	)
)

// menuCommand is the payload shared by commands addressing a single menu.
type menuCommand struct {
	menuID kernel.UUID
	guard  guard.ConstructorGuard
}

func newMenuCommand(menuID kernel.UUID) (menuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return menuCommand{}, err
	}
	return menuCommand{menuID: menuID, guard: guard.NewConstructorGuard()}, nil
}

func (c menuCommand) MenuID() kernel.UUID {
	return c.menuID
}

type DisplayMenuCommand struct {
	menuCommand
}

func NewDisplayMenuCommand(menuID kernel.UUID) (DisplayMenuCommand, error) {
	c, err := newMenuCommand(menuID)
	if err != nil {
		return DisplayMenuCommand{}, err
	}
	return DisplayMenuCommand{c}, nil
}

func (c DisplayMenuCommand) Validate() error {
	return c.guard.Validate(ErrDisplayMenuCommandIsNotConstructed)
}

type HideMenuCommand struct {
	menuCommand
}

func NewHideMenuCommand(menuID kernel.UUID) (HideMenuCommand, error) {
	c, err := newMenuCommand(menuID)
	if err != nil {
		return HideMenuCommand{}, err
	}
	return HideMenuCommand{c}, nil
}

func (c HideMenuCommand) Validate() error {
	return c.guard.Validate(ErrHideMenuCommandIsNotConstructed)
}

// DisplayMenuCommandHandler fails with an illegal state error for an overpriced menu.
type DisplayMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewDisplayMenuCommandHandler(uowFactory MenuUoWFactory) DisplayMenuCommandHandler {
	return DisplayMenuCommandHandler{uowFactory: uowFactory}
}

func (h DisplayMenuCommandHandler) Handle(ctx context.Context, cmd DisplayMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return updateMenu(ctx, h.uowFactory, cmd.MenuID(), (*menu.Menu).Display)
}

type HideMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewHideMenuCommandHandler(uowFactory MenuUoWFactory) HideMenuCommandHandler {
	return HideMenuCommandHandler{uowFactory: uowFactory}
}

func (h HideMenuCommandHandler) Handle(ctx context.Context, cmd HideMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return updateMenu(ctx, h.uowFactory, cmd.MenuID(), func(m *menu.Menu) error {
		m.Hide()
		return nil
	})
}

// updateMenu loads a menu for update, applies change and stores it in one transaction.
func updateMenu(
	ctx context.Context,
	uowFactory MenuUoWFactory,
	menuID kernel.UUID,
	change func(*menu.Menu) error,
) (*menu.Menu, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	m, err := menuRepo.Get(ctx, menuID)
	if err != nil {
		return nil, err
	}

	if err = change(m); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
