package queries

import (
	"context"

	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/pricing"
	"tastebite/internal/pkg/clock"

	"github.com/google/uuid"
)

type BasketQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) (*BasketView, error)
}

type BasketReadStore interface {
	LinesForUser(ctx context.Context, userID uuid.UUID) ([]*BasketItemView, error)
	ActiveOffersForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]OfferView, error)
}

type basketQueriesImpl struct {
	readStore  BasketReadStore
	calculator pricing.Calculator
	clock      clock.Clock
}

func NewBasketQueries(readStore BasketReadStore, calculator pricing.Calculator, clk clock.Clock) BasketQueries {
	return &basketQueriesImpl{
		readStore:  readStore,
		calculator: calculator,
		clock:      clk,
	}
}

func (q *basketQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) (*BasketView, error) {
	lines, err := q.readStore.LinesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		itemIDs = append(itemIDs, line.MenuItemID)
	}

	offersByItem := map[uuid.UUID][]OfferView{}
	if len(itemIDs) > 0 {
		offersByItem, err = q.readStore.ActiveOffersForItems(ctx, itemIDs)
		if err != nil {
			return nil, err
		}
	}

	now := q.clock.Now()
	view := &BasketView{Items: lines}
	for _, line := range lines {
		terms := make([]pricing.OfferTerms, 0, len(offersByItem[line.MenuItemID]))
		for _, o := range offersByItem[line.MenuItemID] {
			terms = append(terms, pricing.OfferTerms{
				ID:         o.ID,
				PercentOff: o.PercentOff,
				ExpiresAt:  o.ExpiresAt,
				Active:     o.Status == "active",
			})
		}

		quote := q.calculator.Quote(menu.MustMoney(line.UnitPriceCents), terms, now)
		line.EffectiveUnitPriceCents = quote.UnitPrice.Cents()
		line.LineTotalCents = quote.UnitPrice.MulQuantity(line.Quantity).Cents()

		view.TotalQuantity += line.Quantity
		view.TotalCents += line.LineTotalCents
	}

	return view, nil
}
