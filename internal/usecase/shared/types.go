package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads (CQRS separation from query views).

type MenuItemSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Status     string
}

type OfferSnapshot struct {
	ID         uuid.UUID
	MenuItemID uuid.UUID
	PercentOff float64
	ExpiresAt  time.Time
	Status     string
}

type BasketEntrySnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
}

// BasketLine is a basket entry joined with its menu item, read under a row
// lock during basket mutations and checkout.
type BasketLine struct {
	EntryID    uuid.UUID
	MenuItemID uuid.UUID
	ItemName   string
	PriceCents int64
	Quantity   int
}

type CouponSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	QRCodePath *string
}
