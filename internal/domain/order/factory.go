package order

import (
	"time"

	"tastebite/internal/domain/menu"

	"github.com/google/uuid"
)

// Line is one priced basket line going into an order: the quantity and the
// effective unit price quoted at checkout time.
type Line struct {
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice menu.Money
}

// NewFromBasket snapshots the basket into an immutable order. The item map
// mirrors the basket exactly; the total is the sum of quantity times the
// quoted unit price.
func NewFromBasket(userID uuid.UUID, lines []Line, orderTime time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyBasket
	}

	items := make(map[uuid.UUID]int, len(lines))
	var total menu.Money
	for _, line := range lines {
		items[line.ItemID] += line.Quantity
		total = total.Add(line.UnitPrice.MulQuantity(line.Quantity))
	}

	return &Order{
		id:        uuid.New(),
		userID:    userID,
		items:     items,
		total:     total,
		orderTime: orderTime,
	}, nil
}
