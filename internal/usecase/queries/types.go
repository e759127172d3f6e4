package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type MenuItemView struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	Weight              string      `json:"weight"`
	Ingredients         string      `json:"ingredients"`
	Description         string      `json:"description"`
	PriceCents          int64       `json:"price_cents"`
	EffectivePriceCents int64       `json:"effective_price_cents"`
	AppliedOfferID      *uuid.UUID  `json:"applied_offer_id,omitempty"`
	ImagePath           string      `json:"image_path"`
	Offers              []OfferView `json:"offers,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OfferView struct {
	ID         uuid.UUID `json:"id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	PercentOff float64   `json:"percent_off"`
	ExpiresAt  time.Time `json:"expires_at"`
	Status     string    `json:"status"`
}

type BasketItemView struct {
	EntryID                 uuid.UUID `json:"entry_id"`
	MenuItemID              uuid.UUID `json:"menu_item_id"`
	ItemName                string    `json:"item_name"`
	Quantity                int       `json:"quantity"`
	UnitPriceCents          int64     `json:"unit_price_cents"`
	EffectiveUnitPriceCents int64     `json:"effective_unit_price_cents"`
	LineTotalCents          int64     `json:"line_total_cents"`
}

type BasketView struct {
	Items         []*BasketItemView `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalCents    int64             `json:"total_cents"`
}

type CouponView struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Items      map[string]int `json:"items"`
	TotalCents int64          `json:"total_cents"`
	OrderTime  time.Time      `json:"order_time"`
	Status     string         `json:"status"`
	QRCodePath *string        `json:"qr_code_path,omitempty"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
