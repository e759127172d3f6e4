package queries

import (
	"context"

	"tastebite/internal/infra"
	"tastebite/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CouponView, error)
	// GetByID enforces ownership: a coupon of another user reads as absent.
	GetByID(ctx context.Context, actorID, couponID uuid.UUID) (*CouponView, error)
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*CouponView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, actorID, couponID uuid.UUID) (*CouponView, error) {
	coupon, err := q.readStore.FindByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	if coupon.UserID != actorID {
		return nil, ErrCouponNotFound
	}

	return coupon, nil
}
