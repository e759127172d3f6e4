package readstore

import (
	"context"

	"tastebite/internal/infra"
	"tastebite/internal/infra/db"
	"tastebite/internal/usecase/queries"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(db db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: db}
}

const activeOffersQuery = `
	SELECT id, menu_item_id, percent_off, expires_at, status
	FROM special_offers
	WHERE menu_item_id = ANY($1) AND status = 'active'
	ORDER BY expires_at`

// ActiveForItems returns active offers grouped by menu item. Expiry is not
// filtered here; pricing decides applicability against its own clock.
func (r *OfferReadStore) ActiveForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.OfferView, error) {
	rows, err := r.db.Query(ctx, activeOffersQuery, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active offers", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]queries.OfferView)
	for rows.Next() {
		var v queries.OfferView
		if err := rows.Scan(&v.ID, &v.MenuItemID, &v.PercentOff, &v.ExpiresAt, &v.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		result[v.MenuItemID] = append(result[v.MenuItemID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return result, nil
}

func (r *OfferReadStore) SnapshotsForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]shared.OfferSnapshot, error) {
	views, err := r.ActiveForItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID][]shared.OfferSnapshot, len(views))
	for itemID, offers := range views {
		snaps := make([]shared.OfferSnapshot, 0, len(offers))
		for _, o := range offers {
			snaps = append(snaps, shared.OfferSnapshot{
				ID:         o.ID,
				MenuItemID: o.MenuItemID,
				PercentOff: o.PercentOff,
				ExpiresAt:  o.ExpiresAt,
				Status:     o.Status,
			})
		}
		result[itemID] = snaps
	}
	return result, nil
}
