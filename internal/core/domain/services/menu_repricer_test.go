package services_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepricer_Reprice(t *testing.T) {
	repricer := services.NewMenuRepricer()

	build := func(t *testing.T, productID kernel.UUID, menuPrice int64) *menu.Menu {
		t.Helper()
		mp, err := menu.NewMenuProduct(kernel.NewUUID(), productID, 2, kernel.MustNewPrice(5000))
		require.NoError(t, err)
		m, err := menu.NewMenu(kernel.NewUUID(), kernel.RestoreDisplayName("Two chickens"),
			kernel.MustNewPrice(menuPrice), true, kernel.NewUUID(), []*menu.MenuProduct{mp})
		require.NoError(t, err)
		return m
	}

	t.Run("should hide only menus that became overpriced", func(t *testing.T) {
		chicken := newProduct(t, "Fried chicken", 5000)
		cheap := build(t, chicken.ID(), 7000)
		pricey := build(t, chicken.ID(), 10000)
		require.NoError(t, chicken.ChangePrice(kernel.MustNewPrice(4000)))

		hidden, err := repricer.Reprice(chicken, []*menu.Menu{cheap, pricey})

		require.NoError(t, err)
		require.Len(t, hidden, 1)
		assert.True(t, hidden[0].IsEqual(pricey))
		assert.True(t, cheap.IsDisplayed())
		assert.False(t, pricey.IsDisplayed())
		assert.True(t, cheap.Products()[0].Price().IsEqual(kernel.MustNewPrice(4000)))
	})

	t.Run("should keep menus displayed when price rises", func(t *testing.T) {
		chicken := newProduct(t, "Fried chicken", 5000)
		m := build(t, chicken.ID(), 10000)
		require.NoError(t, chicken.ChangePrice(kernel.MustNewPrice(6000)))

		hidden, err := repricer.Reprice(chicken, []*menu.Menu{m})

		require.NoError(t, err)
		assert.Empty(t, hidden)
		assert.True(t, m.IsDisplayed())
	})
}
