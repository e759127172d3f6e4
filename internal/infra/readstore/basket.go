package readstore

import (
	"context"

	"tastebite/internal/infra"
	"tastebite/internal/infra/db"
	"tastebite/internal/usecase/queries"

	"github.com/google/uuid"
)

type BasketReadStore struct {
	db     db.DBTX
	offers *OfferReadStore
}

func NewBasketReadStore(dbtx db.DBTX) *BasketReadStore {
	return &BasketReadStore{
		db:     dbtx,
		offers: NewOfferReadStore(dbtx),
	}
}

func (r *BasketReadStore) LinesForUser(ctx context.Context, userID uuid.UUID) ([]*queries.BasketItemView, error) {
	const query = `
		SELECT b.id, b.menu_item_id, m.name, b.quantity, m.price_cents
		FROM basket_items b
		JOIN menu_items m ON m.id = b.menu_item_id
		WHERE b.user_id = $1
		ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list basket lines", err)
	}
	defer rows.Close()

	var lines []*queries.BasketItemView
	for rows.Next() {
		var v queries.BasketItemView
		if err := rows.Scan(&v.EntryID, &v.MenuItemID, &v.ItemName, &v.Quantity, &v.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan basket line", err)
		}
		lines = append(lines, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read basket lines", err)
	}
	return lines, nil
}

func (r *BasketReadStore) ActiveOffersForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.OfferView, error) {
	return r.offers.ActiveForItems(ctx, itemIDs)
}
