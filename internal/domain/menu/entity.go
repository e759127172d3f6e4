package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("menu item name cannot be empty")
	ErrInvalidPrice = errors.New("menu item price must be positive")
)

// Item is a menu position. Items are never hard-deleted; archiving keeps
// historical coupons resolvable.
type Item struct {
	id          uuid.UUID
	name        string
	weight      string
	ingredients string
	description string
	price       Money
	imagePath   string
	status      ItemStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(name, weight, ingredients, description string, price Money, imagePath string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.Cents() <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Item{
		id:          uuid.New(),
		name:        name,
		weight:      weight,
		ingredients: ingredients,
		description: description,
		price:       price,
		imagePath:   imagePath,
		status:      StatusActive,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	name, weight, ingredients, description string,
	price Money,
	imagePath string,
	status ItemStatus,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		name:        name,
		weight:      weight,
		ingredients: ingredients,
		description: description,
		price:       price,
		imagePath:   imagePath,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) Archive() {
	i.status = StatusArchived
}

func (i *Item) IsActive() bool {
	return i.status == StatusActive
}

func (i *Item) ID() uuid.UUID       { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Weight() string      { return i.weight }
func (i *Item) Ingredients() string { return i.ingredients }
func (i *Item) Description() string { return i.description }
func (i *Item) Price() Money        { return i.price }
func (i *Item) ImagePath() string   { return i.imagePath }
func (i *Item) Status() ItemStatus  { return i.status }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
