package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyExpired = errors.New("offer cannot be added as expired")

// Offer is a time-bounded percentage discount attached to one menu item.
type Offer struct {
	id         uuid.UUID
	menuItemID uuid.UUID
	percentOff Percent
	expiresAt  time.Time
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOffer rejects discounts outside [0,100] and expirations that are not
// strictly in the future.
func NewOffer(menuItemID uuid.UUID, percentOff float64, expiresAt, now time.Time) (*Offer, error) {
	percent, err := NewPercent(percentOff)
	if err != nil {
		return nil, err
	}
	if !expiresAt.After(now) {
		return nil, ErrAlreadyExpired
	}

	return &Offer{
		id:         uuid.New(),
		menuItemID: menuItemID,
		percentOff: percent,
		expiresAt:  expiresAt,
		status:     StatusActive,
	}, nil
}

func ReconstructOffer(
	id, menuItemID uuid.UUID,
	percentOff Percent,
	expiresAt time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:         id,
		menuItemID: menuItemID,
		percentOff: percentOff,
		expiresAt:  expiresAt,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// IsApplicableAt reports whether the offer qualifies for pricing at t.
func (o *Offer) IsApplicableAt(t time.Time) bool {
	return o.status == StatusActive && o.expiresAt.After(t)
}

func (o *Offer) HasExpired(now time.Time) bool {
	return o.expiresAt.Before(now)
}

// Deactivate is the terminal lifecycle transition.
func (o *Offer) Deactivate() {
	o.status = StatusInactive
}

func (o *Offer) ID() uuid.UUID         { return o.id }
func (o *Offer) MenuItemID() uuid.UUID { return o.menuItemID }
func (o *Offer) PercentOff() Percent   { return o.percentOff }
func (o *Offer) ExpiresAt() time.Time  { return o.expiresAt }
func (o *Offer) Status() Status        { return o.status }
func (o *Offer) CreatedAt() time.Time  { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time  { return o.updatedAt }
