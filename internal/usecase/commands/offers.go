package commands

import (
	"context"

	"tastebite/internal/pkg/clock"
	"tastebite/internal/usecase/shared"
)

type OfferCommands interface {
	// DeactivateExpired flips every active offer whose expiry has passed to
	// inactive and reports how many rows changed. It runs at startup and on
	// the periodic sweep.
	DeactivateExpired(ctx context.Context) (int64, error)
}

type offerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerUseCaseImpl{uow: uow, clock: clk}
}

func (uc *offerUseCaseImpl) DeactivateExpired(ctx context.Context) (int64, error) {
	var affected int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		affected, err = tx.Offers().DeactivateExpired(ctx, tx.DB(), uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, wrapTxErr(err)
	}
	return affected, nil
}
