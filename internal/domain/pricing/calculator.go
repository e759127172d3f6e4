package pricing

import (
	"time"

	"tastebite/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferTerms is the pricing-relevant slice of a special offer.
type OfferTerms struct {
	ID         uuid.UUID
	PercentOff float64
	ExpiresAt  time.Time
	Active     bool
}

// Quote is the effective unit price of a menu item at a point in time.
type Quote struct {
	UnitPrice    menu.Money
	AppliedOffer *uuid.UUID
	PercentOff   float64
}

type Calculator interface {
	Quote(listPrice menu.Money, offers []OfferTerms, asOf time.Time) Quote
}

// BestOfferCalculator applies the single best qualifying offer: the largest
// discount wins, ties broken by the earliest expiration. Rounding is
// half-up to the cent.
type BestOfferCalculator struct{}

func NewBestOfferCalculator() *BestOfferCalculator {
	return &BestOfferCalculator{}
}

func (c *BestOfferCalculator) Quote(listPrice menu.Money, offers []OfferTerms, asOf time.Time) Quote {
	best := bestQualifying(offers, asOf)
	if best == nil {
		return Quote{UnitPrice: listPrice}
	}

	price := applyPercent(listPrice, best.PercentOff)
	id := best.ID
	return Quote{
		UnitPrice:    price,
		AppliedOffer: &id,
		PercentOff:   best.PercentOff,
	}
}

func bestQualifying(offers []OfferTerms, asOf time.Time) *OfferTerms {
	var best *OfferTerms
	for i := range offers {
		o := &offers[i]
		if !o.Active || !o.ExpiresAt.After(asOf) {
			continue
		}
		switch {
		case best == nil:
			best = o
		case o.PercentOff > best.PercentOff:
			best = o
		case o.PercentOff == best.PercentOff && o.ExpiresAt.Before(best.ExpiresAt):
			best = o
		}
	}
	return best
}

func applyPercent(price menu.Money, percentOff float64) menu.Money {
	factor := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(percentOff))
	cents := decimal.NewFromInt(price.Cents()).
		Mul(factor).
		Div(decimal.NewFromInt(100)).
		Round(0)

	// Discount is bounded by 100 percent, so the result can't go negative.
	m, _ := menu.NewMoney(cents.IntPart())
	return m
}
