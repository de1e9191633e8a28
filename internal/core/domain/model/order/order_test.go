package order_test

import (
	"sync"
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderedAt = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newLineItem(t *testing.T, quantity int64, price int64) *order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), quantity, kernel.MustNewPrice(price))
	require.NoError(t, err)
	return li
}

func newTable(t *testing.T, occupied bool) *ordertable.OrderTable {
	t.Helper()
	guests := 0
	if occupied {
		guests = 2
	}
	table, err := ordertable.RestoreOrderTable(kernel.NewUUID(), "Table 1", guests, occupied)
	require.NoError(t, err)
	return table
}

func newOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()
	destination := order.Destination{Address: "Gangnam-daero 1", Table: newTable(t, true)}
	o, err := order.NewOrder(kernel.NewUUID(), orderType, []*order.LineItem{newLineItem(t, 1, 16000)}, destination, orderedAt)
	require.NoError(t, err)
	return o
}

func TestNewLineItem(t *testing.T) {
	t.Run("should compute amount", func(t *testing.T) {
		li := newLineItem(t, 3, 16000)

		require.NoError(t, li.Validate())
		assert.True(t, li.Amount().Equal(decimal.NewFromInt(48000)))
	})

	t.Run("should keep negative quantity for the order to judge", func(t *testing.T) {
		li := newLineItem(t, -1, 16000)

		assert.Equal(t, int64(-1), li.Quantity())
	})

	t.Run("should join invalid arguments", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, kernel.UUID{}, 1, kernel.Price{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create waiting takeout order", func(t *testing.T) {
		id := kernel.NewUUID()
		lines := []*order.LineItem{newLineItem(t, 2, 16000)}

		o, err := order.NewOrder(id, order.Takeout, lines, order.Destination{}, orderedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Takeout, o.Type())
		assert.Equal(t, order.Waiting, o.Status())
		assert.Equal(t, orderedAt, o.OrderedAt())
		assert.Len(t, o.LineItems(), 1)
		assert.Empty(t, o.DeliveryAddress())
		assert.Nil(t, o.OrderTableID())
		assert.True(t, o.Amount().Equal(decimal.NewFromInt(32000)))
	})

	t.Run("should keep only the destination the type uses", func(t *testing.T) {
		table := newTable(t, true)
		destination := order.Destination{Address: "Gangnam-daero 1", Table: table}

		eatIn, err := order.NewOrder(kernel.NewUUID(), order.EatIn, []*order.LineItem{newLineItem(t, 1, 1)}, destination, orderedAt)
		require.NoError(t, err)
		require.NotNil(t, eatIn.OrderTableID())
		assert.True(t, eatIn.OrderTableID().IsEqual(table.ID()))
		assert.Empty(t, eatIn.DeliveryAddress())

		delivery, err := order.NewOrder(kernel.NewUUID(), order.Delivery, []*order.LineItem{newLineItem(t, 1, 1)}, destination, orderedAt)
		require.NoError(t, err)
		assert.Equal(t, "Gangnam-daero 1", delivery.DeliveryAddress())
		assert.Nil(t, delivery.OrderTableID())
	})

	t.Run("should reject missing line items", func(t *testing.T) {
		for _, lines := range [][]*order.LineItem{nil, {}} {
			_, err := order.NewOrder(kernel.NewUUID(), order.Takeout, lines, order.Destination{}, orderedAt)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.UnknownType, []*order.LineItem{newLineItem(t, 1, 1)}, order.Destination{}, orderedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should apply quantity rule of the type", func(t *testing.T) {
		negative := []*order.LineItem{newLineItem(t, -1, 16000)}
		destination := order.Destination{Address: "Gangnam-daero 1", Table: newTable(t, true)}

		for _, tp := range []order.Type{order.Takeout, order.Delivery} {
			_, err := order.NewOrder(kernel.NewUUID(), tp, negative, destination, orderedAt)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, tp.String())
		}

		eatIn, err := order.NewOrder(kernel.NewUUID(), order.EatIn, negative, destination, orderedAt)
		require.NoError(t, err)
		assert.True(t, eatIn.Amount().Equal(decimal.NewFromInt(-16000)))
	})

	t.Run("should require delivery address", func(t *testing.T) {
		for _, address := range []string{"", "   "} {
			_, err := order.NewOrder(kernel.NewUUID(), order.Delivery, []*order.LineItem{newLineItem(t, 1, 1)},
				order.Destination{Address: address}, orderedAt)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		}
	})

	t.Run("should require occupied table for eat-in", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.EatIn, []*order.LineItem{newLineItem(t, 1, 1)},
			order.Destination{}, orderedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), order.EatIn, []*order.LineItem{newLineItem(t, 1, 1)},
			order.Destination{Table: newTable(t, false)}, orderedAt)
		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Equal(t, errs.KindFailedPrecondition, errs.KindOf(err))
	})

	t.Run("should require ordering time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Takeout, []*order.LineItem{newLineItem(t, 1, 1)},
			order.Destination{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore stored order", func(t *testing.T) {
		tableID := kernel.NewUUID()

		o, err := order.RestoreOrder(kernel.NewUUID(), order.EatIn, order.Served, orderedAt,
			[]*order.LineItem{newLineItem(t, 1, 1)}, "", &tableID)

		require.NoError(t, err)
		assert.Equal(t, order.Served, o.Status())
		assert.True(t, o.OrderTableID().IsEqual(tableID))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Takeout, order.Unknown, orderedAt,
			[]*order.LineItem{newLineItem(t, 1, 1)}, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	a := newOrder(t, order.Takeout)
	b := newOrder(t, order.Takeout)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_FullWorkflow(t *testing.T) {
	t.Run("delivery", func(t *testing.T) {
		o := newOrder(t, order.Delivery)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.CompleteDelivery())
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())

		require.ErrorIs(t, o.Serve(), errs.ErrIllegalState)
	})

	t.Run("eat-in and takeout", func(t *testing.T) {
		for _, tp := range []order.Type{order.EatIn, order.Takeout} {
			o := newOrder(t, tp)

			require.NoError(t, o.Accept())
			require.NoError(t, o.Serve())
			require.NoError(t, o.Complete())
			assert.Equal(t, order.Completed, o.Status())
		}
	})
}

func TestOrder_InvalidTransitions(t *testing.T) {
	t.Run("repeating accept fails", func(t *testing.T) {
		o := newOrder(t, order.Takeout)
		require.NoError(t, o.Accept())

		err := o.Accept()

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("serve before accept fails", func(t *testing.T) {
		o := newOrder(t, order.Takeout)

		require.ErrorIs(t, o.Serve(), errs.ErrIllegalState)
		assert.Equal(t, order.Waiting, o.Status())
	})

	t.Run("non-delivery orders cannot start delivery", func(t *testing.T) {
		for _, tp := range []order.Type{order.EatIn, order.Takeout} {
			o := newOrder(t, tp)
			require.NoError(t, o.Accept())
			require.NoError(t, o.Serve())

			err := o.StartDelivery()

			require.ErrorIs(t, err, errs.ErrIllegalState)
			assert.Contains(t, err.Error(), tp.String()+" orders are not delivered")
			assert.Equal(t, order.Served, o.Status())
		}
	})

	t.Run("delivery order cannot complete when served", func(t *testing.T) {
		o := newOrder(t, order.Delivery)
		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())

		require.ErrorIs(t, o.Complete(), errs.ErrIllegalState)
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("delivery must start before it completes", func(t *testing.T) {
		o := newOrder(t, order.Delivery)
		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())

		require.ErrorIs(t, o.CompleteDelivery(), errs.ErrIllegalState)
	})
}

func TestOrder_LineItems_ReturnsCopy(t *testing.T) {
	o := newOrder(t, order.Takeout)

	items := o.LineItems()
	items[0] = nil

	assert.NotNil(t, o.LineItems()[0])
}

func TestOrder_ConcurrentReads(t *testing.T) {
	o := newOrder(t, order.Delivery)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = o.Status()
			_ = o.Amount()
			_ = o.LineItems()
		}()
	}
	wg.Wait()
}
