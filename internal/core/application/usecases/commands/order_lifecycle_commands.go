package commands

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrServeOrderCommandIsNotConstructed = errors.New(
		"ServeOrderCommand must be created via NewServeOrderCommand constructor",
	)
	ErrStartDeliveryCommandIsNotConstructed = errors.New(
		"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
	)
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// orderCommand is the payload of every lifecycle transition: the order to move.
type orderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderCommand(orderID kernel.UUID) (orderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return orderCommand{}, err
	}
	return orderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c orderCommand) OrderID() kernel.UUID {
	return c.orderID
}

type AcceptOrderCommand struct{ orderCommand }

func NewAcceptOrderCommand(orderID kernel.UUID) (AcceptOrderCommand, error) {
	c, err := newOrderCommand(orderID)
	if err != nil {
		return AcceptOrderCommand{}, err
	}
	return AcceptOrderCommand{c}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

type ServeOrderCommand struct{ orderCommand }

func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	c, err := newOrderCommand(orderID)
	if err != nil {
		return ServeOrderCommand{}, err
	}
	return ServeOrderCommand{c}, nil
}

func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

type StartDeliveryCommand struct{ orderCommand }

func NewStartDeliveryCommand(orderID kernel.UUID) (StartDeliveryCommand, error) {
	c, err := newOrderCommand(orderID)
	if err != nil {
		return StartDeliveryCommand{}, err
	}
	return StartDeliveryCommand{c}, nil
}

func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

type CompleteDeliveryCommand struct{ orderCommand }

func NewCompleteDeliveryCommand(orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	c, err := newOrderCommand(orderID)
	if err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{c}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

type CompleteOrderCommand struct{ orderCommand }

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	c, err := newOrderCommand(orderID)
	if err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{c}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// AcceptOrderCommandHandler accepts a Waiting order. An accepted delivery order is
// handed to the delivery dispatcher inside the transaction, so a dispatch failure
// leaves the order Waiting.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.DeliveryDispatcher
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher ports.DeliveryDispatcher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(_ OrderUoW, o *order.Order) error {
		if err := o.Accept(); err != nil {
			return err
		}
		if !o.Type().IsDelivered() {
			return nil
		}
		return h.dispatcher.RequestDelivery(ctx, o.ID(), o.Amount(), o.DeliveryAddress())
	})
}

type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{uowFactory: uowFactory}
}

func (h ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(_ OrderUoW, o *order.Order) error {
		return o.Serve()
	})
}

type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(_ OrderUoW, o *order.Order) error {
		return o.StartDelivery()
	})
}

type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(_ OrderUoW, o *order.Order) error {
		return o.CompleteDelivery()
	})
}

// CompleteOrderCommandHandler completes an order. Completing an eat-in order clears
// its table unless another order for the table is still open.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(uow OrderUoW, o *order.Order) error {
		if err := o.Complete(); err != nil {
			return err
		}

		tableID := o.OrderTableID()
		if tableID == nil {
			return nil
		}

		// The table row lock serializes completions of orders sharing a table, so the
		// last one to commit sees every sibling completed.
		tableRepo := uow.OrderTableRepository()
		table, err := tableRepo.Get(ctx, *tableID)
		if err != nil {
			return err
		}

		// The order itself is stored as Completed before the check, so only other orders count.
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}

		open, err := uow.OrderRepository().ExistsForTableWithStatusNot(ctx, *tableID, order.Completed)
		if err != nil || open {
			return err
		}

		table.Clear()
		return tableRepo.Update(ctx, table)
	})
}

// transitionOrder loads an order for update, applies one lifecycle step and stores
// the order in one transaction.
func transitionOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	step func(OrderUoW, *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = step(uow, o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
