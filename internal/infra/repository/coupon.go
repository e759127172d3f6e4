package repository

import (
	"context"
	"encoding/json"

	"tastebite/internal/domain/order"
	"tastebite/internal/infra"
	"tastebite/internal/infra/db"

	"github.com/google/uuid"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, tx db.DBTX, ord *order.Order) (uuid.UUID, error) {
	items := make(map[string]int, len(ord.Items()))
	for itemID, qty := range ord.Items() {
		items[itemID.String()] = qty
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode order items", err, infra.KindDBFailure)
	}

	const query = `
		INSERT INTO coupons (id, user_id, order_items, total_cents, order_time, status)
		VALUES ($1, $2, $3, $4, $5, 'active')
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		ord.ID(),
		ord.UserID(),
		payload,
		ord.Total().Cents(),
		ord.OrderTime(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

// AttachArtifact is a no-op when the path is already set, which makes
// concurrent attachment attempts safe.
func (r *CouponRepository) AttachArtifact(ctx context.Context, tx db.DBTX, couponID uuid.UUID, path string) error {
	const query = `
		UPDATE coupons
		SET qr_code_path = $2
		WHERE id = $1 AND qr_code_path IS NULL`

	if _, err := tx.Exec(ctx, query, couponID, path); err != nil {
		return infra.WrapRepoErr("failed to attach coupon artifact", err)
	}
	return nil
}
