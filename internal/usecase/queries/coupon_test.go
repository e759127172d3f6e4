//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tastebite/internal/infra"
	"tastebite/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponReads struct {
	coupons map[uuid.UUID]*queries.CouponView
}

func (f *fakeCouponReads) FindByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	coupon, ok := f.coupons[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)
	}
	return coupon, nil
}

func (f *fakeCouponReads) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.CouponView, error) {
	var out []*queries.CouponView
	for _, coupon := range f.coupons {
		if coupon.UserID == userID {
			out = append(out, coupon)
		}
	}
	return out, nil
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	couponID := uuid.New()

	reads := &fakeCouponReads{coupons: map[uuid.UUID]*queries.CouponView{
		couponID: {
			ID:         couponID,
			UserID:     owner,
			Items:      map[string]int{uuid.NewString(): 2},
			TotalCents: 16000,
			OrderTime:  time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC),
			Status:     "active",
		},
	}}
	q := queries.NewCouponQueries(reads)

	t.Run("owner reads the coupon", func(t *testing.T) {
		coupon, err := q.GetByID(ctx, owner, couponID)
		require.NoError(t, err)
		assert.Equal(t, couponID, coupon.ID)
	})

	t.Run("another user's coupon reads as absent", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), couponID)
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		_, err := q.GetByID(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})
}
