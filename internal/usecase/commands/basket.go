package commands

import (
	"context"

	"tastebite/internal/domain/basket"
	"tastebite/internal/infra"
	"tastebite/internal/pkg/errs"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errs.New("menu item not found")
	ErrEntryNotFound   = errs.New("basket entry not found")
	ErrInvalidQuantity = errs.New("invalid quantity")
	ErrConflict        = errs.New("concurrent basket modification")
)

// wrapTxErr converts an exhausted-retry serialization failure into the
// user-facing conflict sentinel; other errors pass through untouched.
func wrapTxErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrConflict)
	}
	return err
}

type AddItemResult struct {
	EntryID  uuid.UUID
	Quantity int
	Merged   bool
}

type BasketCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, itemName string, quantity int) (*AddItemResult, error)
	UpdateQuantity(ctx context.Context, userID, entryID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, entryID uuid.UUID) error
}

type basketUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBasketCommands(uow shared.UnitOfWork) BasketCommands {
	return &basketUseCaseImpl{uow: uow}
}

func (uc *basketUseCaseImpl) AddItem(ctx context.Context, userID uuid.UUID, itemName string, quantity int) (*AddItemResult, error) {
	if quantity <= 0 {
		return nil, errs.Mark(basket.ErrInvalidQuantity, ErrInvalidQuantity)
	}

	var result *AddItemResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Reads().ActiveItemByName(ctx, itemName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		// Row locks serialize concurrent mutations of the same basket, so
		// the capacity check below cannot race.
		lines, err := tx.Baskets().LockLines(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		currentTotal := 0
		var existing *shared.BasketLine
		for i := range lines {
			currentTotal += lines[i].Quantity
			if lines[i].MenuItemID == item.ID {
				existing = &lines[i]
			}
		}

		if err := basket.CheckAdd(currentTotal, len(lines), quantity, existing != nil); err != nil {
			return err
		}

		if existing != nil {
			newQuantity := existing.Quantity + quantity
			if err := tx.Baskets().UpdateQuantity(ctx, tx.DB(), existing.EntryID, newQuantity); err != nil {
				return err
			}
			result = &AddItemResult{EntryID: existing.EntryID, Quantity: newQuantity, Merged: true}
			return nil
		}

		entry, err := basket.NewEntry(userID, item.ID, quantity)
		if err != nil {
			return errs.Mark(err, ErrInvalidQuantity)
		}

		entryID, err := tx.Baskets().Insert(ctx, tx.DB(), entry)
		if err != nil {
			return err
		}
		result = &AddItemResult{EntryID: entryID, Quantity: quantity}
		return nil
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return result, nil
}

func (uc *basketUseCaseImpl) UpdateQuantity(ctx context.Context, userID, entryID uuid.UUID, quantity int) error {
	// The original UI silently ignored non-positive quantities; here that is
	// an explicit validation failure.
	if quantity <= 0 {
		return errs.Mark(basket.ErrInvalidQuantity, ErrInvalidQuantity)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.Baskets().LockLines(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		othersTotal := 0
		var target *shared.BasketLine
		for i := range lines {
			if lines[i].EntryID == entryID {
				target = &lines[i]
				continue
			}
			othersTotal += lines[i].Quantity
		}
		if target == nil {
			return ErrEntryNotFound
		}

		if err := basket.CheckUpdate(othersTotal, quantity); err != nil {
			return err
		}

		return tx.Baskets().UpdateQuantity(ctx, tx.DB(), entryID, quantity)
	})
	return wrapTxErr(err)
}

func (uc *basketUseCaseImpl) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Baskets().Delete(ctx, tx.DB(), entryID, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrEntryNotFound
		}
		return nil
	})
	return wrapTxErr(err)
}
