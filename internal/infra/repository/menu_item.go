package repository

import (
	"context"

	"tastebite/internal/domain/menu"
	"tastebite/internal/infra"
	"tastebite/internal/infra/db"

	"github.com/google/uuid"
)

type MenuItemRepository struct{}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{}
}

func (r *MenuItemRepository) Create(ctx context.Context, tx db.DBTX, item *menu.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO menu_items (id, name, weight, ingredients, description, price_cents, image_path, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		item.ID(),
		item.Name(),
		item.Weight(),
		item.Ingredients(),
		item.Description(),
		item.Price().Cents(),
		item.ImagePath(),
		item.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create menu item", err)
	}
	return id, nil
}

func (r *MenuItemRepository) Archive(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	const query = `
		UPDATE menu_items
		SET status = 'archived', updated_at = now()
		WHERE id = $1 AND status = 'active'`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to archive menu item", err)
	}
	return tag.RowsAffected(), nil
}
