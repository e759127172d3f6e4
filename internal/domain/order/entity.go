package order

import (
	"errors"
	"time"

	"tastebite/internal/domain/menu"

	"github.com/google/uuid"
)

var (
	ErrEmptyBasket      = errors.New("basket is empty")
	ErrArtifactAttached = errors.New("redemption artifact already attached")
)

// Order is the immutable record of a completed checkout (the coupon). The
// only mutation allowed after creation is the one-time attachment of the
// redemption artifact path.
type Order struct {
	id         uuid.UUID
	userID     uuid.UUID
	items      map[uuid.UUID]int
	total      menu.Money
	orderTime  time.Time
	qrCodePath *string
}

func ReconstructOrder(
	id, userID uuid.UUID,
	items map[uuid.UUID]int,
	total menu.Money,
	orderTime time.Time,
	qrCodePath *string,
) *Order {
	return &Order{
		id:         id,
		userID:     userID,
		items:      items,
		total:      total,
		orderTime:  orderTime,
		qrCodePath: qrCodePath,
	}
}

// AttachArtifact records the redemption artifact path; it may be set once.
func (o *Order) AttachArtifact(path string) error {
	if o.qrCodePath != nil {
		return ErrArtifactAttached
	}
	o.qrCodePath = &path
	return nil
}

// Items returns a copy of the item-id to quantity mapping.
func (o *Order) Items() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(o.items))
	for id, qty := range o.items {
		out[id] = qty
	}
	return out
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) Total() menu.Money    { return o.total }
func (o *Order) OrderTime() time.Time { return o.orderTime }
func (o *Order) QRCodePath() *string  { return o.qrCodePath }
