package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Weight      string `json:"weight"`
	Ingredients string `json:"ingredients"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	ImagePath   string `json:"image_path"`
}

type CreateOfferRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	PercentOff float64   `json:"percent_off" binding:"required,gte=0,lte=100"`
	ExpiresAt  time.Time `json:"expires_at" binding:"required"`
}
