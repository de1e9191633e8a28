package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
)

// CreateOrderCommandHandler places a Waiting order.
//
// Menus are resolved and checked line by line before the destination: an unknown
// menu, a negative takeout or delivery quantity and a price mismatch are invalid
// arguments, a hidden menu is an illegal state. Then a delivery order needs an
// address and an eat-in order an existing (not found otherwise) and occupied
// (illegal state otherwise) table.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, cmd.MenuIDs())
	if err != nil {
		return nil, err
	}

	items, err := services.NewOrderLineResolver().Resolve(cmd.Type(), cmd.Lines(), menus)
	if err != nil {
		return nil, err
	}

	destination := order.Destination{Address: cmd.DeliveryAddress()}
	if cmd.Type() == order.EatIn && cmd.OrderTableID() != nil {
		table, tableErr := uow.OrderTableRepository().Get(ctx, *cmd.OrderTableID())
		if tableErr != nil {
			return nil, tableErr
		}
		destination.Table = table
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Type(), items, destination, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
