package commands

import (
	"context"
	"time"

	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/offer"
	"tastebite/internal/infra"
	"tastebite/internal/pkg/clock"
	"tastebite/internal/pkg/errs"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateItem     = errs.New("menu item already exists")
	ErrInvalidItemInput  = errs.New("invalid menu item input")
	ErrInvalidOfferInput = errs.New("invalid offer input")
)

type CreateItemInput struct {
	Name        string
	Weight      string
	Ingredients string
	Description string
	PriceCents  int64
	ImagePath   string
}

type CreateOfferInput struct {
	MenuItemID uuid.UUID
	PercentOff float64
	ExpiresAt  time.Time
}

type CatalogCommands interface {
	CreateItem(ctx context.Context, input CreateItemInput) (uuid.UUID, error)
	// ArchiveItem retires the item from the menu without deleting it, so
	// coupons that reference it stay resolvable.
	ArchiveItem(ctx context.Context, id uuid.UUID) error
	CreateOffer(ctx context.Context, input CreateOfferInput) (uuid.UUID, error)
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateItem(ctx context.Context, input CreateItemInput) (uuid.UUID, error) {
	price, err := menu.NewMoney(input.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidItemInput)
	}
	item, err := menu.NewItem(input.Name, input.Weight, input.Ingredients, input.Description, price, input.ImagePath)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidItemInput)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.MenuItems().Create(ctx, tx.DB(), item)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateItem)
		}
		return uuid.Nil, wrapTxErr(err)
	}
	return id, nil
}

func (uc *catalogUseCaseImpl) ArchiveItem(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.MenuItems().Archive(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrItemNotFound
		}
		return nil
	})
	return wrapTxErr(err)
}

func (uc *catalogUseCaseImpl) CreateOffer(ctx context.Context, input CreateOfferInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Reads().ItemByID(ctx, input.MenuItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if item.Status != string(menu.StatusActive) {
			return ErrItemNotFound
		}

		off, err := offer.NewOffer(input.MenuItemID, input.PercentOff, input.ExpiresAt, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidOfferInput)
		}

		id, err = tx.Offers().Create(ctx, tx.DB(), off)
		return err
	})
	if err != nil {
		return uuid.Nil, wrapTxErr(err)
	}
	return id, nil
}
