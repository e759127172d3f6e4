//go:build unit

package menu_test

import (
	"testing"

	"tastebite/internal/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := menu.NewMoney(-1)
		assert.ErrorIs(t, err, menu.ErrNegativeMoney)
	})

	t.Run("arithmetic", func(t *testing.T) {
		a := menu.MustMoney(8000)
		b := menu.MustMoney(5000)

		assert.Equal(t, int64(13000), a.Add(b).Cents())
		assert.Equal(t, int64(16000), a.MulQuantity(2).Cents())
	})

	t.Run("renders in major units", func(t *testing.T) {
		assert.Equal(t, "80.00", menu.MustMoney(8000).String())
		assert.Equal(t, "0.05", menu.MustMoney(5).String())
		assert.Equal(t, "0.00", menu.Money{}.String())
	})
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := menu.NewItem("Margherita", "450g", "dough, tomato, mozzarella", "classic", menu.MustMoney(10000), "")
		require.NoError(t, err)
		assert.Equal(t, "Margherita", item.Name())
		assert.True(t, item.IsActive())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := menu.NewItem("   ", "", "", "", menu.MustMoney(100), "")
		assert.ErrorIs(t, err, menu.ErrEmptyName)
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := menu.NewItem("Margherita", "", "", "", menu.Money{}, "")
		assert.ErrorIs(t, err, menu.ErrInvalidPrice)
	})

	t.Run("archive", func(t *testing.T) {
		item, err := menu.NewItem("Margherita", "", "", "", menu.MustMoney(100), "")
		require.NoError(t, err)

		item.Archive()
		assert.False(t, item.IsActive())
		assert.Equal(t, menu.StatusArchived, item.Status())
	})
}
