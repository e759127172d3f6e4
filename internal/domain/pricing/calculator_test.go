//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func offer(percentOff float64, expiresAt time.Time, active bool) pricing.OfferTerms {
	return pricing.OfferTerms{
		ID:         uuid.New(),
		PercentOff: percentOff,
		ExpiresAt:  expiresAt,
		Active:     active,
	}
}

func TestQuote_NoOffers(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()

	quote := calc.Quote(menu.MustMoney(10000), nil, now)

	assert.Equal(t, int64(10000), quote.UnitPrice.Cents())
	assert.Nil(t, quote.AppliedOffer)
}

func TestQuote_SingleOffer(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()
	o := offer(20, now.Add(time.Hour), true)

	quote := calc.Quote(menu.MustMoney(10000), []pricing.OfferTerms{o}, now)

	assert.Equal(t, int64(8000), quote.UnitPrice.Cents())
	assert.Equal(t, "80.00", quote.UnitPrice.String())
	require.NotNil(t, quote.AppliedOffer)
	assert.Equal(t, o.ID, *quote.AppliedOffer)
	assert.Equal(t, float64(20), quote.PercentOff)
}

func TestQuote_LargestDiscountWins(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()
	small := offer(10, now.Add(time.Hour), true)
	big := offer(30, now.Add(48*time.Hour), true)

	quote := calc.Quote(menu.MustMoney(10000), []pricing.OfferTerms{small, big}, now)

	assert.Equal(t, int64(7000), quote.UnitPrice.Cents())
	require.NotNil(t, quote.AppliedOffer)
	assert.Equal(t, big.ID, *quote.AppliedOffer)
}

func TestQuote_TieBrokenByEarliestExpiry(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()
	later := offer(25, now.Add(72*time.Hour), true)
	sooner := offer(25, now.Add(time.Hour), true)

	quote := calc.Quote(menu.MustMoney(10000), []pricing.OfferTerms{later, sooner}, now)

	require.NotNil(t, quote.AppliedOffer)
	assert.Equal(t, sooner.ID, *quote.AppliedOffer)
}

func TestQuote_SkipsExpiredAndInactive(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()
	expired := offer(50, now.Add(-time.Minute), true)
	inactive := offer(40, now.Add(time.Hour), false)
	usable := offer(10, now.Add(time.Hour), true)

	quote := calc.Quote(menu.MustMoney(10000), []pricing.OfferTerms{expired, inactive, usable}, now)

	assert.Equal(t, int64(9000), quote.UnitPrice.Cents())
	require.NotNil(t, quote.AppliedOffer)
	assert.Equal(t, usable.ID, *quote.AppliedOffer)
}

func TestQuote_ExpiryBoundaryIsExclusive(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()
	atBoundary := offer(20, now, true)

	quote := calc.Quote(menu.MustMoney(10000), []pricing.OfferTerms{atBoundary}, now)

	assert.Equal(t, int64(10000), quote.UnitPrice.Cents())
	assert.Nil(t, quote.AppliedOffer)
}

func TestQuote_RoundsHalfUpToCents(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()

	// 25 cents at 50% off is 12.5 cents, rounded half-up to 13.
	quote := calc.Quote(menu.MustMoney(25), []pricing.OfferTerms{offer(50, now.Add(time.Hour), true)}, now)
	assert.Equal(t, int64(13), quote.UnitPrice.Cents())

	// 999 cents at 5% off is 949.05 cents, rounded down to 949.
	quote = calc.Quote(menu.MustMoney(999), []pricing.OfferTerms{offer(5, now.Add(time.Hour), true)}, now)
	assert.Equal(t, int64(949), quote.UnitPrice.Cents())
}

func TestQuote_FullDiscount(t *testing.T) {
	calc := pricing.NewBestOfferCalculator()

	quote := calc.Quote(menu.MustMoney(10000), []pricing.OfferTerms{offer(100, now.Add(time.Hour), true)}, now)

	assert.Equal(t, int64(0), quote.UnitPrice.Cents())
}
