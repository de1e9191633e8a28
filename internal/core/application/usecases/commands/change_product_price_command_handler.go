package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/services"
)

// ChangeProductPriceCommandHandler changes a product price and reprices every menu
// containing the product in the same transaction. Menus whose price now exceeds
// their products total are hidden.
type ChangeProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewChangeProductPriceCommandHandler(uowFactory ProductUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	menuRepo := uow.MenuRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.ChangePrice(cmd.Price()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	menus, err := menuRepo.GetAllByProductID(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	if _, err = services.NewMenuRepricer().Reprice(p, menus); err != nil {
		return nil, err
	}

	for _, m := range menus {
		if err = menuRepo.Update(ctx, m); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
