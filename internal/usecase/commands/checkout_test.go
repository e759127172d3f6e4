//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tastebite/internal/domain/pricing"
	"tastebite/internal/pkg/clock"
	"tastebite/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkoutTime = time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

type stubArtifacts struct {
	err   error
	calls int
}

func (s *stubArtifacts) Generate(couponID uuid.UUID) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "static/qrcodes/coupon_" + couponID.String() + ".png", nil
}

func newCheckout(uow *fakeUoW, artifacts commands.ArtifactGenerator) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(uow, pricing.NewBestOfferCalculator(), artifacts, clock.NewMockClock(checkoutTime))
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("converts basket into a coupon", func(t *testing.T) {
		uow := newFakeUoW()
		pizza := uow.addItem("Margherita", 10000, "active")
		salad := uow.addItem("Caesar", 5000, "active")
		uow.addOffer(pizza, 20, checkoutTime.Add(time.Hour), "active")
		uow.addLine(userID, pizza, 2)
		uow.addLine(userID, salad, 1)
		uc := newCheckout(uow, &stubArtifacts{})

		view, err := uc.Checkout(ctx, userID)
		require.NoError(t, err)

		// 2 x 8000 discounted + 1 x 5000 list price.
		assert.Equal(t, int64(21000), view.TotalCents)
		assert.Equal(t, checkoutTime, view.OrderTime)
		assert.Empty(t, cmp.Diff(map[string]int{pizza.String(): 2, salad.String(): 1}, view.Items))
		require.NotNil(t, view.QRCodePath)
		assert.Equal(t, "static/qrcodes/coupon_"+view.ID.String()+".png", *view.QRCodePath)

		assert.Empty(t, uow.linesFor(userID), "basket must be cleared")
		stored, ok := uow.st.coupons[view.ID]
		require.True(t, ok)
		assert.Equal(t, int64(21000), stored.totalCents)
		require.NotNil(t, stored.qrCodePath)
	})

	t.Run("expired offer does not discount", func(t *testing.T) {
		uow := newFakeUoW()
		pizza := uow.addItem("Margherita", 10000, "active")
		uow.addOffer(pizza, 50, checkoutTime, "active")
		uow.addLine(userID, pizza, 1)
		uc := newCheckout(uow, &stubArtifacts{})

		view, err := uc.Checkout(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), view.TotalCents)
	})

	t.Run("empty basket", func(t *testing.T) {
		uow := newFakeUoW()
		uc := newCheckout(uow, &stubArtifacts{})

		_, err := uc.Checkout(ctx, userID)
		assert.ErrorIs(t, err, commands.ErrEmptyBasket)
	})

	t.Run("failed coupon insert leaves the basket intact", func(t *testing.T) {
		uow := newFakeUoW()
		pizza := uow.addItem("Margherita", 10000, "active")
		uow.addLine(userID, pizza, 2)
		uow.failCouponCreate = true
		uc := newCheckout(uow, &stubArtifacts{})

		_, err := uc.Checkout(ctx, userID)
		require.Error(t, err)
		assert.Len(t, uow.linesFor(userID), 1, "rollback must restore the basket")
		assert.Empty(t, uow.st.coupons)
	})

	t.Run("artifact failure does not void the coupon", func(t *testing.T) {
		uow := newFakeUoW()
		pizza := uow.addItem("Margherita", 10000, "active")
		uow.addLine(userID, pizza, 1)
		uc := newCheckout(uow, &stubArtifacts{err: errors.New("disk full")})

		view, err := uc.Checkout(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, view.QRCodePath)

		stored, ok := uow.st.coupons[view.ID]
		require.True(t, ok)
		assert.Nil(t, stored.qrCodePath)
		assert.Empty(t, uow.linesFor(userID))
	})
}

func TestEnsureArtifact(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	checkoutWithoutArtifact := func(t *testing.T, uow *fakeUoW) uuid.UUID {
		t.Helper()
		pizza := uow.addItem("Margherita", 10000, "active")
		uow.addLine(userID, pizza, 1)
		view, err := newCheckout(uow, &stubArtifacts{err: errors.New("disk full")}).Checkout(ctx, userID)
		require.NoError(t, err)
		return view.ID
	}

	t.Run("generates a missing artifact", func(t *testing.T) {
		uow := newFakeUoW()
		couponID := checkoutWithoutArtifact(t, uow)
		uc := newCheckout(uow, &stubArtifacts{})

		path, err := uc.EnsureArtifact(ctx, userID, couponID)
		require.NoError(t, err)
		assert.Equal(t, "static/qrcodes/coupon_"+couponID.String()+".png", path)

		stored := uow.st.coupons[couponID]
		require.NotNil(t, stored.qrCodePath)
		assert.Equal(t, path, *stored.qrCodePath)
	})

	t.Run("returns the existing path without regenerating", func(t *testing.T) {
		uow := newFakeUoW()
		couponID := checkoutWithoutArtifact(t, uow)
		artifacts := &stubArtifacts{}
		uc := newCheckout(uow, artifacts)

		first, err := uc.EnsureArtifact(ctx, userID, couponID)
		require.NoError(t, err)
		second, err := uc.EnsureArtifact(ctx, userID, couponID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, artifacts.calls)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		uow := newFakeUoW()
		uc := newCheckout(uow, &stubArtifacts{})

		_, err := uc.EnsureArtifact(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("another user's coupon reads as missing", func(t *testing.T) {
		uow := newFakeUoW()
		couponID := checkoutWithoutArtifact(t, uow)
		uc := newCheckout(uow, &stubArtifacts{})

		_, err := uc.EnsureArtifact(ctx, uuid.New(), couponID)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("generation failure", func(t *testing.T) {
		uow := newFakeUoW()
		couponID := checkoutWithoutArtifact(t, uow)
		uc := newCheckout(uow, &stubArtifacts{err: errors.New("disk full")})

		_, err := uc.EnsureArtifact(ctx, userID, couponID)
		assert.ErrorIs(t, err, commands.ErrArtifactGeneration)
	})
}
