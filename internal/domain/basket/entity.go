package basket

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Entry is one (user, menu item, quantity) line of a basket.
type Entry struct {
	id         uuid.UUID
	userID     uuid.UUID
	menuItemID uuid.UUID
	quantity   int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewEntry(userID, menuItemID uuid.UUID, quantity int) (*Entry, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Entry{
		id:         uuid.New(),
		userID:     userID,
		menuItemID: menuItemID,
		quantity:   quantity,
	}, nil
}

func ReconstructEntry(id, userID, menuItemID uuid.UUID, quantity int, createdAt, updatedAt time.Time) *Entry {
	return &Entry{
		id:         id,
		userID:     userID,
		menuItemID: menuItemID,
		quantity:   quantity,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) UserID() uuid.UUID     { return e.userID }
func (e *Entry) MenuItemID() uuid.UUID { return e.menuItemID }
func (e *Entry) Quantity() int         { return e.quantity }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time  { return e.updatedAt }
