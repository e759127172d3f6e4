package response

import (
	"time"

	"tastebite/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MenuItemResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Weight              string          `json:"weight"`
	Ingredients         string          `json:"ingredients"`
	Description         string          `json:"description"`
	PriceCents          int64           `json:"price_cents"`
	EffectivePriceCents int64           `json:"effective_price_cents"`
	AppliedOfferID      *uuid.UUID      `json:"applied_offer_id,omitempty"`
	ImagePath           string          `json:"image_path"`
	Offers              []OfferResponse `json:"offers,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type OfferResponse struct {
	ID         uuid.UUID `json:"id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	PercentOff float64   `json:"percent_off"`
	ExpiresAt  time.Time `json:"expires_at"`
	Status     string    `json:"status"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromMenuItemView(rm *queries.MenuItemView) *MenuItemResponse {
	var resp MenuItemResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromMenuItemViews(rms []*queries.MenuItemView) []*MenuItemResponse {
	resps := make([]*MenuItemResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, FromMenuItemView(rm))
	}
	return resps
}
