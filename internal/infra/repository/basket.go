package repository

import (
	"context"

	"tastebite/internal/domain/basket"
	"tastebite/internal/infra"
	"tastebite/internal/infra/db"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

type BasketRepository struct{}

func NewBasketRepository() *BasketRepository {
	return &BasketRepository{}
}

// LockLines joins basket entries with their menu items and takes FOR UPDATE
// row locks on the entries, serializing concurrent basket mutations.
func (r *BasketRepository) LockLines(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]shared.BasketLine, error) {
	const query = `
		SELECT b.id, b.menu_item_id, m.name, m.price_cents, b.quantity
		FROM basket_items b
		JOIN menu_items m ON m.id = b.menu_item_id
		WHERE b.user_id = $1
		ORDER BY b.created_at
		FOR UPDATE OF b`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock basket lines", err)
	}
	defer rows.Close()

	var lines []shared.BasketLine
	for rows.Next() {
		var line shared.BasketLine
		if err := rows.Scan(&line.EntryID, &line.MenuItemID, &line.ItemName, &line.PriceCents, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan basket line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read basket lines", err)
	}
	return lines, nil
}

func (r *BasketRepository) Insert(ctx context.Context, tx db.DBTX, entry *basket.Entry) (uuid.UUID, error) {
	const query = `
		INSERT INTO basket_items (id, user_id, menu_item_id, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		entry.ID(),
		entry.UserID(),
		entry.MenuItemID(),
		entry.Quantity(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert basket entry", err)
	}
	return id, nil
}

func (r *BasketRepository) UpdateQuantity(ctx context.Context, tx db.DBTX, entryID uuid.UUID, quantity int) error {
	const query = `
		UPDATE basket_items
		SET quantity = $2, updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, query, entryID, quantity); err != nil {
		return infra.WrapRepoErr("failed to update basket quantity", err)
	}
	return nil
}

func (r *BasketRepository) Delete(ctx context.Context, tx db.DBTX, entryID, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM basket_items WHERE id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, query, entryID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete basket entry", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BasketRepository) DeleteAllForUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM basket_items WHERE user_id = $1`

	tag, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear basket", err)
	}
	return tag.RowsAffected(), nil
}
