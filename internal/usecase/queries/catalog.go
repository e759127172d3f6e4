package queries

import (
	"context"

	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/pricing"
	"tastebite/internal/infra"
	"tastebite/internal/pkg/clock"
	"tastebite/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("menu item not found")

type CatalogQueries interface {
	ListItems(ctx context.Context) ([]*MenuItemView, error)
	GetItemByName(ctx context.Context, name string) (*MenuItemView, error)
}

type CatalogReadStore interface {
	ActiveItems(ctx context.Context) ([]*MenuItemView, error)
	ActiveItemByName(ctx context.Context, name string) (*MenuItemView, error)
}

type catalogQueriesImpl struct {
	readStore  CatalogReadStore
	calculator pricing.Calculator
	clock      clock.Clock
}

func NewCatalogQueries(readStore CatalogReadStore, calculator pricing.Calculator, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		readStore:  readStore,
		calculator: calculator,
		clock:      clk,
	}
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context) ([]*MenuItemView, error) {
	items, err := q.readStore.ActiveItems(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		q.quoteItem(item)
	}
	return items, nil
}

func (q *catalogQueriesImpl) GetItemByName(ctx context.Context, name string) (*MenuItemView, error) {
	item, err := q.readStore.ActiveItemByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	q.quoteItem(item)
	return item, nil
}

func (q *catalogQueriesImpl) quoteItem(item *MenuItemView) {
	terms := make([]pricing.OfferTerms, 0, len(item.Offers))
	for _, o := range item.Offers {
		terms = append(terms, pricing.OfferTerms{
			ID:         o.ID,
			PercentOff: o.PercentOff,
			ExpiresAt:  o.ExpiresAt,
			Active:     o.Status == "active",
		})
	}

	quote := q.calculator.Quote(menu.MustMoney(item.PriceCents), terms, q.clock.Now())
	item.EffectivePriceCents = quote.UnitPrice.Cents()
	item.AppliedOfferID = quote.AppliedOffer
}
