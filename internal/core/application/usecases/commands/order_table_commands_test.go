package commands_test

import (
	"errors"
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, guests int, occupied bool) *ordertable.OrderTable {
	t.Helper()
	table, err := ordertable.RestoreOrderTable(kernel.NewUUID(), "Table 1", guests, occupied)
	require.NoError(t, err)
	return table
}

func TestCreateOrderTableCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderTableCommand("Table 9")
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.tables.On("Add", ctx, mock.AnythingOfType("*ordertable.OrderTable")).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	table, err := commands.NewCreateOrderTableCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Table 9", table.Name())
	assert.Equal(t, 0, table.NumberOfGuests())
	assert.False(t, table.IsOccupied())
	r.assert(t)

	_, err = commands.NewCreateOrderTableCommand(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSitOrderTableCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	table := newTable(t, 0, false)
	cmd, _ := commands.NewSitOrderTableCommand(table.ID())

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.tables.On("Get", ctx, table.ID()).Return(table, nil).Once(),
		r.tables.On("Update", ctx, table).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	got, err := commands.NewSitOrderTableCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, got.IsOccupied())
	r.assert(t)
}

func TestClearOrderTableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	table := newTable(t, 4, true)
	cmd, _ := commands.NewClearOrderTableCommand(table.ID())

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.tables.On("Get", ctx, table.ID()).Return(table, nil).Once(),
		r.orders.On("ExistsForTableWithStatusNot", ctx, table.ID(), order.Completed).Return(false, nil).Once(),
		r.tables.On("Update", ctx, table).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	got, err := commands.NewClearOrderTableCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, got.IsOccupied())
	assert.Equal(t, 0, got.NumberOfGuests())
	r.assert(t)
}

func TestClearOrderTableCommandHandler_Handle_UncompletedOrders(t *testing.T) {
	ctx := t.Context()
	table := newTable(t, 4, true)
	cmd, _ := commands.NewClearOrderTableCommand(table.ID())

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.tables.On("Get", ctx, table.ID()).Return(table, nil).Once(),
		r.orders.On("ExistsForTableWithStatusNot", ctx, table.ID(), order.Completed).Return(true, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	_, err := commands.NewClearOrderTableCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIllegalState)
	assert.True(t, table.IsOccupied())
	assert.Equal(t, 4, table.NumberOfGuests())
	r.assert(t)
}

func TestClearOrderTableCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewClearOrderTableCommand(id)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.tables.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order table", id)).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	_, err := commands.NewClearOrderTableCommandHandler(factory).Handle(ctx, cmd)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	r.assert(t)
}

func TestNewChangeNumberOfGuestsCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeNumberOfGuestsCommand(id, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, cmd.NumberOfGuests())
	assert.Equal(t, id, cmd.OrderTableID())

	_, err = commands.NewChangeNumberOfGuestsCommand(id, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeNumberOfGuestsCommand(kernel.UUID{}, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeNumberOfGuestsCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		occupied bool
		wantErr  error
	}{
		{name: "occupied table", occupied: true},
		{name: "empty table", occupied: false, wantErr: errs.ErrIllegalState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			table := newTable(t, 0, tt.occupied)
			cmd, _ := commands.NewChangeNumberOfGuestsCommand(table.ID(), 5)

			r := newRepos()
			r.uow.On("Begin", ctx).Return(nil).Once()
			r.tables.On("Get", ctx, table.ID()).Return(table, nil).Once()
			if tt.wantErr == nil {
				r.tables.On("Update", ctx, table).Return(nil).Once()
				r.uow.On("Commit", ctx).Return(nil).Once()
			}
			r.uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockOrderTableUoWFactory)
			factory.On("Create").Return(r.uow).Once()

			got, err := commands.NewChangeNumberOfGuestsCommandHandler(factory).Handle(ctx, cmd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, table.NumberOfGuests())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 5, got.NumberOfGuests())
			}
			r.assert(t)
		})
	}
}

func TestSitOrderTableCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	table := newTable(t, 0, false)
	cmd, _ := commands.NewSitOrderTableCommand(table.ID())

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.tables.On("Get", ctx, table.ID()).Return(table, nil).Once(),
		r.tables.On("Update", ctx, table).Return(errors.New("update error")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(r.uow).Once()

	_, err := commands.NewSitOrderTableCommandHandler(factory).Handle(ctx, cmd)
	require.Error(t, err)
	r.assert(t)
}
