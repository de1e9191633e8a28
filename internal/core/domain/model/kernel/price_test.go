package kernel_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "0.01", "16000", "16000.50"} {
			p, err := kernel.NewPrice(decimal.RequireFromString(amount))

			require.NoError(t, err, amount)
			require.NoError(t, p.Validate())
			assert.True(t, p.Amount().Equal(decimal.RequireFromString(amount)))
		}
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestRequirePrice(t *testing.T) {
	t.Run("should reject missing amount", func(t *testing.T) {
		_, err := kernel.RequirePrice(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should build from present amount", func(t *testing.T) {
		amount := decimal.NewFromInt(9000)

		p, err := kernel.RequirePrice(&amount)

		require.NoError(t, err)
		assert.Equal(t, "9000.00", p.String())
	})
}

func TestPrice_Validate(t *testing.T) {
	var p kernel.Price

	assert.Equal(t, kernel.ErrPriceIsNotConstructed, p.Validate())
}

func TestPrice_Times(t *testing.T) {
	p := kernel.MustNewPrice(5000)

	assert.True(t, p.Times(2).Equal(decimal.NewFromInt(10000)))
	assert.True(t, p.Times(0).IsZero())
	assert.True(t, p.Times(-1).Equal(decimal.NewFromInt(-5000)))
}

func TestPrice_Exceeds(t *testing.T) {
	total := decimal.NewFromInt(10000)

	assert.False(t, kernel.MustNewPrice(9000).Exceeds(total))
	assert.False(t, kernel.MustNewPrice(10000).Exceeds(total))
	assert.True(t, kernel.MustNewPrice(10001).Exceeds(total))
}

func TestPrice_IsEqual(t *testing.T) {
	a, err := kernel.NewPrice(decimal.RequireFromString("16000.00"))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(kernel.MustNewPrice(16000)))
	assert.False(t, a.IsEqual(kernel.MustNewPrice(15999)))
}

func TestMustNewPrice_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewPrice(-1) })
}
