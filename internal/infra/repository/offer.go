package repository

import (
	"context"
	"time"

	"tastebite/internal/domain/offer"
	"tastebite/internal/infra"
	"tastebite/internal/infra/db"

	"github.com/google/uuid"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) Create(ctx context.Context, tx db.DBTX, off *offer.Offer) (uuid.UUID, error) {
	const query = `
		INSERT INTO special_offers (id, menu_item_id, percent_off, expires_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		off.ID(),
		off.MenuItemID(),
		off.PercentOff().Value(),
		off.ExpiresAt(),
		off.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return id, nil
}

func (r *OfferRepository) DeactivateExpired(ctx context.Context, tx db.DBTX, asOf time.Time) (int64, error) {
	const query = `
		UPDATE special_offers
		SET status = 'inactive', updated_at = now()
		WHERE status = 'active' AND expires_at <= $1`

	tag, err := tx.Exec(ctx, query, asOf)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate expired offers", err)
	}
	return tag.RowsAffected(), nil
}
