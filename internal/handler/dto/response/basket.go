package response

import (
	"tastebite/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BasketItemResponse struct {
	EntryID                 uuid.UUID `json:"entry_id"`
	MenuItemID              uuid.UUID `json:"menu_item_id"`
	ItemName                string    `json:"item_name"`
	Quantity                int       `json:"quantity"`
	UnitPriceCents          int64     `json:"unit_price_cents"`
	EffectiveUnitPriceCents int64     `json:"effective_unit_price_cents"`
	LineTotalCents          int64     `json:"line_total_cents"`
}

type BasketResponse struct {
	Items         []*BasketItemResponse `json:"items"`
	TotalQuantity int                   `json:"total_quantity"`
	TotalCents    int64                 `json:"total_cents"`
}

type AddBasketItemResponse struct {
	EntryID  uuid.UUID `json:"entry_id"`
	Quantity int       `json:"quantity"`
	Merged   bool      `json:"merged"`
}

func FromBasketView(rm *queries.BasketView) *BasketResponse {
	resp := &BasketResponse{Items: []*BasketItemResponse{}}
	_ = copier.Copy(resp, rm)
	return resp
}
