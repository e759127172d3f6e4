package commands

import (
	"context"
	"log/slog"

	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/order"
	"tastebite/internal/domain/pricing"
	"tastebite/internal/infra"
	"tastebite/internal/pkg/clock"
	"tastebite/internal/pkg/errs"
	"tastebite/internal/usecase/queries"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyBasket        = errs.New("basket is empty")
	ErrCouponNotFound     = errs.New("coupon not found")
	ErrArtifactGeneration = errs.New("artifact generation failed")
)

// ArtifactGenerator produces the redemption artifact for a coupon and
// returns the path it can be served from. Implementations must be
// idempotent: generating twice for the same coupon yields the same path.
type ArtifactGenerator interface {
	Generate(couponID uuid.UUID) (string, error)
}

type CheckoutCommands interface {
	// Checkout converts the basket into a coupon atomically; the redemption
	// artifact is attached after commit and its failure does not void the
	// coupon.
	Checkout(ctx context.Context, userID uuid.UUID) (*queries.CouponView, error)
	// EnsureArtifact returns the coupon's artifact path, generating and
	// attaching it if a previous attempt failed.
	EnsureArtifact(ctx context.Context, actorID, couponID uuid.UUID) (string, error)
}

type checkoutUseCaseImpl struct {
	uow        shared.UnitOfWork
	calculator pricing.Calculator
	artifacts  ArtifactGenerator
	clock      clock.Clock
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	calculator pricing.Calculator,
	artifacts ArtifactGenerator,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:        uow,
		calculator: calculator,
		artifacts:  artifacts,
		clock:      clk,
	}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, userID uuid.UUID) (*queries.CouponView, error) {
	var ord *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.Baskets().LockLines(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyBasket
		}

		itemIDs := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			itemIDs = append(itemIDs, line.MenuItemID)
		}
		offersByItem, err := tx.Reads().ActiveOffersForItems(ctx, itemIDs)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		orderLines := make([]order.Line, 0, len(lines))
		for _, line := range lines {
			quote := uc.calculator.Quote(menu.MustMoney(line.PriceCents), offerTerms(offersByItem[line.MenuItemID]), now)
			orderLines = append(orderLines, order.Line{
				ItemID:    line.MenuItemID,
				Quantity:  line.Quantity,
				UnitPrice: quote.UnitPrice,
			})
		}

		o, err := order.NewFromBasket(userID, orderLines, now)
		if err != nil {
			return err
		}
		if _, err := tx.Coupons().Create(ctx, tx.DB(), o); err != nil {
			return err
		}
		if _, err := tx.Baskets().DeleteAllForUser(ctx, tx.DB(), userID); err != nil {
			return err
		}

		ord = o
		return nil
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}

	// Coupon is committed; artifact generation is best-effort and can be
	// retried through EnsureArtifact.
	if path, err := uc.attachArtifact(ctx, ord.ID()); err == nil {
		_ = ord.AttachArtifact(path)
	} else {
		slog.WarnContext(ctx, "coupon artifact generation failed",
			slog.String("coupon_id", ord.ID().String()),
			slog.String("error", err.Error()))
	}

	return couponViewFromOrder(ord), nil
}

func (uc *checkoutUseCaseImpl) EnsureArtifact(ctx context.Context, actorID, couponID uuid.UUID) (string, error) {
	snap, err := uc.uow.CommandReads().CouponByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrCouponNotFound)
		}
		return "", err
	}
	if snap.UserID != actorID {
		return "", ErrCouponNotFound
	}
	if snap.QRCodePath != nil {
		return *snap.QRCodePath, nil
	}
	return uc.attachArtifact(ctx, couponID)
}

func (uc *checkoutUseCaseImpl) attachArtifact(ctx context.Context, couponID uuid.UUID) (string, error) {
	path, err := uc.artifacts.Generate(couponID)
	if err != nil {
		return "", errs.Mark(err, ErrArtifactGeneration)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().AttachArtifact(ctx, tx.DB(), couponID, path)
	})
	if err != nil {
		return "", errs.Mark(err, ErrArtifactGeneration)
	}
	return path, nil
}

func offerTerms(offers []shared.OfferSnapshot) []pricing.OfferTerms {
	terms := make([]pricing.OfferTerms, 0, len(offers))
	for _, o := range offers {
		terms = append(terms, pricing.OfferTerms{
			ID:         o.ID,
			PercentOff: o.PercentOff,
			ExpiresAt:  o.ExpiresAt,
			Active:     o.Status == "active",
		})
	}
	return terms
}

func couponViewFromOrder(o *order.Order) *queries.CouponView {
	items := make(map[string]int, len(o.Items()))
	for id, qty := range o.Items() {
		items[id.String()] = qty
	}
	return &queries.CouponView{
		ID:         o.ID(),
		UserID:     o.UserID(),
		Items:      items,
		TotalCents: o.Total().Cents(),
		OrderTime:  o.OrderTime(),
		Status:     "active",
		QRCodePath: o.QRCodePath(),
	}
}
