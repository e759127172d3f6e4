package readstore

import (
	"context"

	"tastebite/internal/infra"
	"tastebite/internal/infra/db"
	"tastebite/internal/pkg/pgconv"
	"tastebite/internal/usecase/queries"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db     db.DBTX
	offers *OfferReadStore
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		db:     dbtx,
		offers: NewOfferReadStore(dbtx),
	}
}

const menuItemColumns = `id, name, weight, ingredients, description, price_cents, image_path, status, created_at, updated_at`

func (r *CatalogReadStore) ActiveItems(ctx context.Context) ([]*queries.MenuItemView, error) {
	const query = `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE status = 'active'
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var items []*queries.MenuItemView
	var itemIDs []uuid.UUID
	for rows.Next() {
		item, err := scanMenuItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		items = append(items, item)
		itemIDs = append(itemIDs, item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}

	if err := r.attachOffers(ctx, items, itemIDs); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogReadStore) ActiveItemByName(ctx context.Context, name string) (*queries.MenuItemView, error) {
	const query = `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE name = $1 AND status = 'active'`

	item, err := scanMenuItemView(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by name", err)
	}

	if err := r.attachOffers(ctx, []*queries.MenuItemView{item}, []uuid.UUID{item.ID}); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CatalogReadStore) SnapshotActiveByName(ctx context.Context, name string) (*shared.MenuItemSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, status
		FROM menu_items
		WHERE name = $1 AND status = 'active'`

	return r.scanSnapshot(r.db.QueryRow(ctx, query, name), "menu item not found by name")
}

func (r *CatalogReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, status
		FROM menu_items
		WHERE id = $1`

	return r.scanSnapshot(r.db.QueryRow(ctx, query, id), "menu item not found by id")
}

func (r *CatalogReadStore) scanSnapshot(row interface{ Scan(...any) error }, notFoundMsg string) (*shared.MenuItemSnapshot, error) {
	var snap shared.MenuItemSnapshot
	err := row.Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return &snap, nil
}

func (r *CatalogReadStore) attachOffers(ctx context.Context, items []*queries.MenuItemView, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}
	offersByItem, err := r.offers.ActiveForItems(ctx, itemIDs)
	if err != nil {
		return err
	}
	for _, item := range items {
		item.Offers = offersByItem[item.ID]
	}
	return nil
}

func scanMenuItemView(row interface{ Scan(...any) error }) (*queries.MenuItemView, error) {
	var (
		v      queries.MenuItemView
		status string
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Weight, &v.Ingredients, &v.Description,
		&v.PriceCents, &v.ImagePath, &status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
