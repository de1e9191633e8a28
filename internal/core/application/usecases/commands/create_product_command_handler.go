package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// CreateProductCommandHandler checks the product name with the content policy
// and stores the new product.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     kernel.ContentPolicy
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, policy kernel.ContentPolicy) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle consults the content policy before opening the transaction; a policy
// failure aborts the command.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	name, err := kernel.NewDisplayName(ctx, cmd.Name(), h.policy)
	if err != nil {
		return nil, err
	}

	p, err := product.NewProduct(kernel.NewUUID(), name, cmd.Price())
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

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
