package commands

import (
	"context"
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrSitOrderTableCommandIsNotConstructed = errors.New(
		"SitOrderTableCommand must be created via NewSitOrderTableCommand constructor",
	)
	ErrClearOrderTableCommandIsNotConstructed = errors.New(
		"ClearOrderTableCommand must be created via NewClearOrderTableCommand constructor",
	)
	ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
		"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
	)
)

type orderTableCommand struct {
	orderTableID kernel.UUID
	guard        guard.ConstructorGuard
}

func newOrderTableCommand(orderTableID kernel.UUID) (orderTableCommand, error) {
	if err := orderTableID.Validate(); err != nil {
		return orderTableCommand{}, err
	}
	return orderTableCommand{orderTableID: orderTableID, guard: guard.NewConstructorGuard()}, nil
}

func (c orderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

type SitOrderTableCommand struct {
	orderTableCommand
}

func NewSitOrderTableCommand(orderTableID kernel.UUID) (SitOrderTableCommand, error) {
	c, err := newOrderTableCommand(orderTableID)
	if err != nil {
		return SitOrderTableCommand{}, err
	}
	return SitOrderTableCommand{c}, nil
}

func (c SitOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrSitOrderTableCommandIsNotConstructed)
}

type ClearOrderTableCommand struct {
	orderTableCommand
}

func NewClearOrderTableCommand(orderTableID kernel.UUID) (ClearOrderTableCommand, error) {
	c, err := newOrderTableCommand(orderTableID)
	if err != nil {
		return ClearOrderTableCommand{}, err
	}
	return ClearOrderTableCommand{c}, nil
}

func (c ClearOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrClearOrderTableCommandIsNotConstructed)
}

type ChangeNumberOfGuestsCommand struct {
	orderTableCommand
	numberOfGuests int
}

// NewChangeNumberOfGuestsCommand rejects a negative guest count before the table is looked up.
func NewChangeNumberOfGuestsCommand(orderTableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	var guestsErr error
	if numberOfGuests < 0 {
		guestsErr = errs.NewValueIsInvalidErrorWithCause("number of guests", fmt.Errorf("%d is negative", numberOfGuests))
	}

	c, idErr := newOrderTableCommand(orderTableID)
	if err := errors.Join(guestsErr, idErr); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}
	return ChangeNumberOfGuestsCommand{orderTableCommand: c, numberOfGuests: numberOfGuests}, nil
}

func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

type SitOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewSitOrderTableCommandHandler(uowFactory OrderTableUoWFactory) SitOrderTableCommandHandler {
	return SitOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h SitOrderTableCommandHandler) Handle(ctx context.Context, cmd SitOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return updateOrderTable(ctx, h.uowFactory, cmd.OrderTableID(), func(_ OrderTableUoW, t *ordertable.OrderTable) error {
		t.Sit()
		return nil
	})
}

// ClearOrderTableCommandHandler releases a table. It fails with an illegal state
// error while any order for the table is not completed.
type ClearOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewClearOrderTableCommandHandler(uowFactory OrderTableUoWFactory) ClearOrderTableCommandHandler {
	return ClearOrderTableCommandHandler{uowFactory: uowFactory}
}

func (h ClearOrderTableCommandHandler) Handle(ctx context.Context, cmd ClearOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return updateOrderTable(ctx, h.uowFactory, cmd.OrderTableID(), func(uow OrderTableUoW, t *ordertable.OrderTable) error {
		open, err := uow.OrderRepository().ExistsForTableWithStatusNot(ctx, t.ID(), order.Completed)
		if err != nil {
			return err
		}
		if open {
			return errs.NewIllegalStateErrorWithCause("order table",
				errors.New("the table has uncompleted orders"))
		}

		t.Clear()
		return nil
	})
}

type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

func NewChangeNumberOfGuestsCommandHandler(uowFactory OrderTableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{uowFactory: uowFactory}
}

func (h ChangeNumberOfGuestsCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeNumberOfGuestsCommand,
) (*ordertable.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return updateOrderTable(ctx, h.uowFactory, cmd.OrderTableID(), func(_ OrderTableUoW, t *ordertable.OrderTable) error {
		return t.ChangeNumberOfGuests(cmd.NumberOfGuests())
	})
}

func updateOrderTable(
	ctx context.Context,
	uowFactory OrderTableUoWFactory,
	orderTableID kernel.UUID,
	change func(OrderTableUoW, *ordertable.OrderTable) error,
) (*ordertable.OrderTable, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.OrderTableRepository()

	table, err := tableRepo.Get(ctx, orderTableID)
	if err != nil {
		return nil, err
	}

	if err = change(uow, table); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
