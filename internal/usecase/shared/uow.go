package shared

import (
	"context"
	"time"

	"tastebite/internal/domain/basket"
	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/offer"
	"tastebite/internal/domain/order"
	"tastebite/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	MenuItems() MenuItemRepository
	Offers() OfferRepository
	Baskets() BasketRepository
	Coupons() CouponRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ActiveItemByName(ctx context.Context, name string) (*MenuItemSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
	ActiveOffersForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]OfferSnapshot, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, item *menu.Item) (uuid.UUID, error)
	Archive(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx db.DBTX, off *offer.Offer) (uuid.UUID, error)
	DeactivateExpired(ctx context.Context, tx db.DBTX, asOf time.Time) (int64, error)
}

type BasketRepository interface {
	// LockLines reads the user's basket joined with menu items under
	// FOR UPDATE, serializing concurrent mutations of the same basket.
	LockLines(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]BasketLine, error)
	Insert(ctx context.Context, tx db.DBTX, entry *basket.Entry) (uuid.UUID, error)
	UpdateQuantity(ctx context.Context, tx db.DBTX, entryID uuid.UUID, quantity int) error
	Delete(ctx context.Context, tx db.DBTX, entryID, userID uuid.UUID) (int64, error)
	DeleteAllForUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, ord *order.Order) (uuid.UUID, error)
	// AttachArtifact sets qr_code_path once; it is a no-op when already set.
	AttachArtifact(ctx context.Context, tx db.DBTX, couponID uuid.UUID, path string) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type CreateUserParams struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
}
