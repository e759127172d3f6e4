//go:build unit

package order_test

import (
	"testing"
	"time"

	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderTime = time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

func TestNewFromBasket(t *testing.T) {
	userID := uuid.New()
	pizza := uuid.New()
	salad := uuid.UUID{0x01}

	t.Run("empty basket is rejected", func(t *testing.T) {
		_, err := order.NewFromBasket(userID, nil, orderTime)
		assert.ErrorIs(t, err, order.ErrEmptyBasket)
	})

	t.Run("snapshots items and totals", func(t *testing.T) {
		lines := []order.Line{
			{ItemID: pizza, Quantity: 2, UnitPrice: menu.MustMoney(8000)},
			{ItemID: salad, Quantity: 1, UnitPrice: menu.MustMoney(5000)},
		}

		o, err := order.NewFromBasket(userID, lines, orderTime)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, userID, o.UserID())
		assert.Equal(t, orderTime, o.OrderTime())
		assert.Equal(t, int64(21000), o.Total().Cents())
		assert.Equal(t, "210.00", o.Total().String())
		assert.Equal(t, map[uuid.UUID]int{pizza: 2, salad: 1}, o.Items())
		assert.Nil(t, o.QRCodePath())
	})

	t.Run("items map is a copy", func(t *testing.T) {
		lines := []order.Line{{ItemID: pizza, Quantity: 1, UnitPrice: menu.MustMoney(100)}}
		o, err := order.NewFromBasket(userID, lines, orderTime)
		require.NoError(t, err)

		items := o.Items()
		items[pizza] = 99
		assert.Equal(t, 1, o.Items()[pizza])
	})
}

func TestAttachArtifact(t *testing.T) {
	o, err := order.NewFromBasket(uuid.New(), []order.Line{
		{ItemID: uuid.New(), Quantity: 1, UnitPrice: menu.MustMoney(100)},
	}, orderTime)
	require.NoError(t, err)

	require.NoError(t, o.AttachArtifact("static/qrcodes/coupon_x.png"))
	require.NotNil(t, o.QRCodePath())
	assert.Equal(t, "static/qrcodes/coupon_x.png", *o.QRCodePath())

	assert.ErrorIs(t, o.AttachArtifact("elsewhere.png"), order.ErrArtifactAttached)
}
