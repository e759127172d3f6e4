package response

import (
	"time"

	"tastebite/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Items      map[string]int `json:"items"`
	TotalCents int64          `json:"total_cents"`
	OrderTime  time.Time      `json:"order_time"`
	Status     string         `json:"status"`
	QRCodePath *string        `json:"qr_code_path,omitempty"`
}

func FromCouponView(rm *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCouponViews(rms []*queries.CouponView) []*CouponResponse {
	resps := make([]*CouponResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, FromCouponView(rm))
	}
	return resps
}
