package readstore

import (
	"context"
	"encoding/json"

	"tastebite/internal/infra"
	"tastebite/internal/infra/db"
	"tastebite/internal/pkg/pgconv"
	"tastebite/internal/usecase/queries"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const couponColumns = `id, user_id, order_items, total_cents, order_time, status, qr_code_path`

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	view, err := scanCouponView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by id", err)
	}
	return view, nil
}

func (r *CouponReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CouponView, error) {
	const query = `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE user_id = $1
		ORDER BY order_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupons", err)
	}
	return views, nil
}

func (r *CouponReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.CouponSnapshot, error) {
	const query = `SELECT id, user_id, qr_code_path FROM coupons WHERE id = $1`

	var snap shared.CouponSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.UserID, &snap.QRCodePath)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by id", err)
	}
	return &snap, nil
}

func scanCouponView(row interface{ Scan(...any) error }) (*queries.CouponView, error) {
	var (
		v       queries.CouponView
		payload []byte
	)
	err := row.Scan(&v.ID, &v.UserID, &payload, &v.TotalCents, &v.OrderTime, &v.Status, &v.QRCodePath)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &v.Items); err != nil {
		return nil, err
	}
	return &v, nil
}
