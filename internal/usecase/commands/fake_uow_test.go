//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"tastebite/internal/domain/basket"
	"tastebite/internal/domain/menu"
	"tastebite/internal/domain/offer"
	"tastebite/internal/domain/order"
	"tastebite/internal/infra"
	"tastebite/internal/infra/db"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory UnitOfWork. Within snapshots the state before the
// callback and restores it on error, mirroring a transaction rollback.
type fakeUoW struct {
	st               *fakeState
	failCouponCreate bool
}

type fakeState struct {
	items   map[uuid.UUID]shared.MenuItemSnapshot
	offers  map[uuid.UUID][]shared.OfferSnapshot
	lines   []basketRow
	coupons map[uuid.UUID]couponRow
	users   map[uuid.UUID]userRow
}

type basketRow struct {
	userID uuid.UUID
	line   shared.BasketLine
}

type couponRow struct {
	userID     uuid.UUID
	items      map[uuid.UUID]int
	totalCents int64
	orderTime  time.Time
	qrCodePath *string
}

type userRow struct {
	username     string
	email        string
	passwordHash string
	role         string
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{st: &fakeState{
		items:   map[uuid.UUID]shared.MenuItemSnapshot{},
		offers:  map[uuid.UUID][]shared.OfferSnapshot{},
		coupons: map[uuid.UUID]couponRow{},
		users:   map[uuid.UUID]userRow{},
	}}
}

func (u *fakeUoW) addItem(name string, priceCents int64, status string) uuid.UUID {
	id := uuid.New()
	u.st.items[id] = shared.MenuItemSnapshot{ID: id, Name: name, PriceCents: priceCents, Status: status}
	return id
}

func (u *fakeUoW) addOffer(itemID uuid.UUID, percentOff float64, expiresAt time.Time, status string) uuid.UUID {
	id := uuid.New()
	u.st.offers[itemID] = append(u.st.offers[itemID], shared.OfferSnapshot{
		ID: id, MenuItemID: itemID, PercentOff: percentOff, ExpiresAt: expiresAt, Status: status,
	})
	return id
}

func (u *fakeUoW) addLine(userID, itemID uuid.UUID, quantity int) uuid.UUID {
	item := u.st.items[itemID]
	entryID := uuid.New()
	u.st.lines = append(u.st.lines, basketRow{userID: userID, line: shared.BasketLine{
		EntryID: entryID, MenuItemID: itemID, ItemName: item.Name, PriceCents: item.PriceCents, Quantity: quantity,
	}})
	return entryID
}

func (u *fakeUoW) linesFor(userID uuid.UUID) []shared.BasketLine {
	var out []shared.BasketLine
	for _, row := range u.st.lines {
		if row.userID == userID {
			out = append(out, row.line)
		}
	}
	return out
}

func (st *fakeState) clone() *fakeState {
	cp := &fakeState{
		items:   map[uuid.UUID]shared.MenuItemSnapshot{},
		offers:  map[uuid.UUID][]shared.OfferSnapshot{},
		coupons: map[uuid.UUID]couponRow{},
		users:   map[uuid.UUID]userRow{},
	}
	for k, v := range st.items {
		cp.items[k] = v
	}
	for k, v := range st.offers {
		cp.offers[k] = append([]shared.OfferSnapshot(nil), v...)
	}
	cp.lines = append([]basketRow(nil), st.lines...)
	for k, v := range st.coupons {
		cp.coupons[k] = v
	}
	for k, v := range st.users {
		cp.users[k] = v
	}
	return cp
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backup := u.st.clone()
	tx := &fakeTx{uow: u}
	if err := fn(ctx, tx); err != nil {
		*u.st = *backup
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{uow: u}
}

type fakeTx struct {
	uow *fakeUoW
}

func (t *fakeTx) DB() db.DBTX                          { return nil }
func (t *fakeTx) MenuItems() shared.MenuItemRepository { return &fakeMenuItems{uow: t.uow} }
func (t *fakeTx) Offers() shared.OfferRepository       { return &fakeOffers{uow: t.uow} }
func (t *fakeTx) Baskets() shared.BasketRepository     { return &fakeBaskets{uow: t.uow} }
func (t *fakeTx) Coupons() shared.CouponRepository     { return &fakeCoupons{uow: t.uow} }
func (t *fakeTx) Users() shared.UserRepository         { return &fakeUsers{uow: t.uow} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{uow: t.uow} }

type fakeReads struct {
	uow *fakeUoW
}

func (r *fakeReads) ActiveItemByName(_ context.Context, name string) (*shared.MenuItemSnapshot, error) {
	for _, item := range r.uow.st.items {
		if item.Name == name && item.Status == "active" {
			snap := item
			return &snap, nil
		}
	}
	return nil, infra.WrapRepoErr("menu item not found", errors.New("no rows"), infra.KindNotFound)
}

func (r *fakeReads) ItemByID(_ context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	item, ok := r.uow.st.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("menu item not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &item, nil
}

func (r *fakeReads) ActiveOffersForItems(_ context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]shared.OfferSnapshot, error) {
	out := map[uuid.UUID][]shared.OfferSnapshot{}
	for _, id := range itemIDs {
		for _, o := range r.uow.st.offers[id] {
			if o.Status == "active" {
				out[id] = append(out[id], o)
			}
		}
	}
	return out, nil
}

func (r *fakeReads) CouponByID(_ context.Context, id uuid.UUID) (*shared.CouponSnapshot, error) {
	row, ok := r.uow.st.coupons[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &shared.CouponSnapshot{ID: id, UserID: row.userID, QRCodePath: row.qrCodePath}, nil
}

type fakeMenuItems struct {
	uow *fakeUoW
}

func (f *fakeMenuItems) Create(_ context.Context, _ db.DBTX, item *menu.Item) (uuid.UUID, error) {
	for _, existing := range f.uow.st.items {
		if existing.Name == item.Name() {
			return uuid.Nil, infra.WrapRepoErr("duplicate item", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	f.uow.st.items[item.ID()] = shared.MenuItemSnapshot{
		ID: item.ID(), Name: item.Name(), PriceCents: item.Price().Cents(), Status: item.Status().String(),
	}
	return item.ID(), nil
}

func (f *fakeMenuItems) Archive(_ context.Context, _ db.DBTX, id uuid.UUID) (int64, error) {
	item, ok := f.uow.st.items[id]
	if !ok || item.Status != "active" {
		return 0, nil
	}
	item.Status = "archived"
	f.uow.st.items[id] = item
	return 1, nil
}

type fakeOffers struct {
	uow *fakeUoW
}

func (f *fakeOffers) Create(_ context.Context, _ db.DBTX, off *offer.Offer) (uuid.UUID, error) {
	f.uow.st.offers[off.MenuItemID()] = append(f.uow.st.offers[off.MenuItemID()], shared.OfferSnapshot{
		ID:         off.ID(),
		MenuItemID: off.MenuItemID(),
		PercentOff: off.PercentOff().Value(),
		ExpiresAt:  off.ExpiresAt(),
		Status:     off.Status().String(),
	})
	return off.ID(), nil
}

func (f *fakeOffers) DeactivateExpired(_ context.Context, _ db.DBTX, asOf time.Time) (int64, error) {
	var affected int64
	for itemID, offers := range f.uow.st.offers {
		for i, o := range offers {
			if o.Status == "active" && !o.ExpiresAt.After(asOf) {
				offers[i].Status = "inactive"
				affected++
			}
		}
		f.uow.st.offers[itemID] = offers
	}
	return affected, nil
}

type fakeBaskets struct {
	uow *fakeUoW
}

func (f *fakeBaskets) LockLines(_ context.Context, _ db.DBTX, userID uuid.UUID) ([]shared.BasketLine, error) {
	return f.uow.linesFor(userID), nil
}

func (f *fakeBaskets) Insert(_ context.Context, _ db.DBTX, entry *basket.Entry) (uuid.UUID, error) {
	item := f.uow.st.items[entry.MenuItemID()]
	f.uow.st.lines = append(f.uow.st.lines, basketRow{userID: entry.UserID(), line: shared.BasketLine{
		EntryID:    entry.ID(),
		MenuItemID: entry.MenuItemID(),
		ItemName:   item.Name,
		PriceCents: item.PriceCents,
		Quantity:   entry.Quantity(),
	}})
	return entry.ID(), nil
}

func (f *fakeBaskets) UpdateQuantity(_ context.Context, _ db.DBTX, entryID uuid.UUID, quantity int) error {
	for i := range f.uow.st.lines {
		if f.uow.st.lines[i].line.EntryID == entryID {
			f.uow.st.lines[i].line.Quantity = quantity
			return nil
		}
	}
	return infra.WrapRepoErr("basket entry not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeBaskets) Delete(_ context.Context, _ db.DBTX, entryID, userID uuid.UUID) (int64, error) {
	for i := range f.uow.st.lines {
		if f.uow.st.lines[i].line.EntryID == entryID && f.uow.st.lines[i].userID == userID {
			f.uow.st.lines = append(f.uow.st.lines[:i], f.uow.st.lines[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBaskets) DeleteAllForUser(_ context.Context, _ db.DBTX, userID uuid.UUID) (int64, error) {
	var kept []basketRow
	var removed int64
	for _, row := range f.uow.st.lines {
		if row.userID == userID {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	f.uow.st.lines = kept
	return removed, nil
}

type fakeCoupons struct {
	uow *fakeUoW
}

func (f *fakeCoupons) Create(_ context.Context, _ db.DBTX, ord *order.Order) (uuid.UUID, error) {
	if f.uow.failCouponCreate {
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", errors.New("boom"), infra.KindDBFailure)
	}
	f.uow.st.coupons[ord.ID()] = couponRow{
		userID:     ord.UserID(),
		items:      ord.Items(),
		totalCents: ord.Total().Cents(),
		orderTime:  ord.OrderTime(),
	}
	return ord.ID(), nil
}

func (f *fakeCoupons) AttachArtifact(_ context.Context, _ db.DBTX, couponID uuid.UUID, path string) error {
	row, ok := f.uow.st.coupons[couponID]
	if !ok {
		return infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound)
	}
	if row.qrCodePath == nil {
		row.qrCodePath = &path
		f.uow.st.coupons[couponID] = row
	}
	return nil
}

type fakeUsers struct {
	uow *fakeUoW
}

func (f *fakeUsers) Create(_ context.Context, _ db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	for _, u := range f.uow.st.users {
		if u.email == params.Email || u.username == params.Username {
			return uuid.Nil, infra.WrapRepoErr("duplicate user", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	f.uow.st.users[params.ID] = userRow{
		username:     params.Username,
		email:        params.Email,
		passwordHash: params.PasswordHash,
		role:         params.Role,
	}
	return params.ID, nil
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}
