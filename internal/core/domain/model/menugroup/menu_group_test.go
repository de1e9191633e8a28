package menugroup_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuGroup(t *testing.T) {
	t.Run("should create menu group", func(t *testing.T) {
		id := kernel.NewUUID()

		g, err := menugroup.NewMenuGroup(id, "Chicken sets")

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.ID().IsEqual(id))
		assert.Equal(t, "Chicken sets", g.Name())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		for _, name := range []string{"", "  "} {
			g, err := menugroup.NewMenuGroup(kernel.NewUUID(), name)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Nil(t, g)
		}
	})

	t.Run("should reject missing identifier", func(t *testing.T) {
		_, err := menugroup.NewMenuGroup(kernel.UUID{}, "Chicken sets")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestMenuGroup_Validate(t *testing.T) {
	var g *menugroup.MenuGroup

	assert.Equal(t, menugroup.ErrMenuGroupIsNotConstructed, g.Validate())
}
