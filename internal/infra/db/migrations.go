package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(200) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		weight VARCHAR(50) NOT NULL DEFAULT '',
		ingredients TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		price_cents BIGINT NOT NULL CHECK (price_cents > 0),
		image_path VARCHAR(500) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS special_offers (
		id UUID PRIMARY KEY,
		menu_item_id UUID NOT NULL REFERENCES menu_items(id),
		percent_off NUMERIC(5,2) NOT NULL CHECK (percent_off >= 0 AND percent_off <= 100),
		expires_at TIMESTAMPTZ NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_special_offers_active
		ON special_offers(menu_item_id) WHERE status = 'active'`,
	`CREATE TABLE IF NOT EXISTS basket_items (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		menu_item_id UUID NOT NULL REFERENCES menu_items(id),
		quantity INT NOT NULL CHECK (quantity > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, menu_item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		order_items JSONB NOT NULL,
		total_cents BIGINT NOT NULL CHECK (total_cents >= 0),
		order_time TIMESTAMPTZ NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		qr_code_path VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_coupons_user ON coupons(user_id, order_time DESC)`,
}

// Migrate applies the schema at startup. Statements are idempotent, so the
// runner needs no version bookkeeping.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	slog.Info("database migrations applied", "count", len(migrations))
	return nil
}
