package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/cart"
	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type fakeCartRepo struct {
	lines  []*cart.Line
	nextID uint
}

func (f *fakeCartRepo) Create(ctx context.Context, line *cart.Line) error {
	for _, l := range f.lines {
		if l.UserID() == line.UserID() && l.BookID() == line.BookID() {
			return apperrors.NewConflictError("This book is already in your cart.")
		}
	}
	f.nextID++
	line.SetID(f.nextID)
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeCartRepo) GetByID(ctx context.Context, id uint) (*cart.Line, error) {
	for _, l := range f.lines {
		if l.ID() == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uint) ([]*cart.Line, error) {
	var out []*cart.Line
	for _, l := range f.lines {
		if l.UserID() == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) DeleteByIDAndUser(ctx context.Context, id, userID uint) (int64, error) {
	for i, l := range f.lines {
		if l.ID() == id && l.UserID() == userID {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCartRepo) ClearByUser(ctx context.Context, userID uint) error {
	var kept []*cart.Line
	for _, l := range f.lines {
		if l.UserID() != userID {
			kept = append(kept, l)
		}
	}
	f.lines = kept
	return nil
}

type fakePurchaseRepo struct {
	purchases  []*purchase.Purchase
	nextID     uint
	failCreate error
}

func (f *fakePurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.nextID++
	p.SetID(f.nextID)
	f.purchases = append(f.purchases, p)
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id uint, userID *uint) (*purchase.Purchase, error) {
	for _, p := range f.purchases {
		if p.ID() == id && (userID == nil || p.UserID() == *userID) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePurchaseRepo) Update(ctx context.Context, p *purchase.Purchase) error {
	for i, existing := range f.purchases {
		if existing.ID() == p.ID() {
			f.purchases[i] = p
			return nil
		}
	}
	return apperrors.NewNotFoundError("purchase not found")
}

func (f *fakePurchaseRepo) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, int64, error) {
	var out []*purchase.Purchase
	for _, p := range f.purchases {
		if filter.UserID == nil || p.UserID() == *filter.UserID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

type fakeBookPurchaseRepo struct {
	links     []*purchase.BookPurchase
	failBatch error
}

func (f *fakeBookPurchaseRepo) CreateBatch(ctx context.Context, links []*purchase.BookPurchase) error {
	if f.failBatch != nil {
		return f.failBatch
	}
	for _, link := range links {
		for _, existing := range f.links {
			if existing.UserID() == link.UserID() && existing.BookID() == link.BookID() {
				return apperrors.NewConflictError("book ownership already recorded")
			}
		}
	}
	f.links = append(f.links, links...)
	return nil
}

func (f *fakeBookPurchaseRepo) ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error) {
	for _, link := range f.links {
		if link.UserID() == userID && link.BookID() == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookPurchaseRepo) CountByPurchase(ctx context.Context, purchaseID uint) (int64, error) {
	var n int64
	for _, link := range f.links {
		if link.PurchaseID() == purchaseID {
			n++
		}
	}
	return n, nil
}

type fakeReadModel struct {
	views map[uint]catalog.BookLineView
}

func (f *fakeReadModel) ResolveBookForCartLine(ctx context.Context, bookID uint) (*catalog.BookLineView, error) {
	view, ok := f.views[bookID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Book with ID %d was not found.", bookID))
	}
	return &view, nil
}

// fakeTx runs the body without a real transaction boundary.
type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func catalogViews() map[uint]catalog.BookLineView {
	return map[uint]catalog.BookLineView{
		1: {BookID: 1, Title: "War and Peace", Price: 12.50, Available: true, Author: catalog.LineAuthor{ID: 1, Name: "Leo Tolstoy"}},
		2: {BookID: 2, Title: "Anna Karenina", Price: 9.99, Available: true, Author: catalog.LineAuthor{ID: 1, Name: "Leo Tolstoy"}},
	}
}

func seedCart(t *testing.T, repo *fakeCartRepo, userID uint, bookIDs ...uint) {
	t.Helper()
	for _, bookID := range bookIDs {
		line, err := cart.NewLine(userID, bookID, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), line))
	}
}

func newCheckoutFixture() (*fakeCartRepo, *fakePurchaseRepo, *fakeBookPurchaseRepo, *CheckoutUseCase, *clock.Fixed) {
	cartRepo := &fakeCartRepo{}
	purchaseRepo := &fakePurchaseRepo{}
	bookPurchaseRepo := &fakeBookPurchaseRepo{}
	readModel := &fakeReadModel{views: catalogViews()}
	clk := clock.NewFixed(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	uc := NewCheckoutUseCase(cartRepo, purchaseRepo, bookPurchaseRepo, readModel, fakeTx{}, clk, logger.NewNop())
	return cartRepo, purchaseRepo, bookPurchaseRepo, uc, clk
}

func TestCheckout_EmptyCart(t *testing.T) {
	_, _, _, uc, _ := newCheckoutFixture()

	_, err := uc.Execute(context.Background(), CheckoutCommand{UserID: 7, SynchronousPayment: true})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "no items in the cart")
}

func TestCheckout_Synchronous(t *testing.T) {
	cartRepo, purchaseRepo, bookPurchaseRepo, uc, clk := newCheckoutFixture()
	seedCart(t, cartRepo, 7, 1, 2)

	p, err := uc.Execute(context.Background(), CheckoutCommand{UserID: 7, SynchronousPayment: true})

	require.NoError(t, err)
	assert.True(t, p.IsPaid())
	require.NotNil(t, p.PaidAt())
	assert.Equal(t, clk.Now(), *p.PaidAt())
	assert.InDelta(t, 22.49, p.Total(), 0.0001)
	assert.Len(t, p.Snapshot(), 2)

	// cart is emptied and ownership links exist
	lines, err := cartRepo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, lines)

	n, err := bookPurchaseRepo.CountByPurchase(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stored, err := purchaseRepo.GetByID(context.Background(), p.ID(), nil)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsPaid())
}

func TestCheckout_Asynchronous_LeavesPurchasePending(t *testing.T) {
	cartRepo, _, bookPurchaseRepo, uc, _ := newCheckoutFixture()
	seedCart(t, cartRepo, 7, 1)

	p, err := uc.Execute(context.Background(), CheckoutCommand{UserID: 7})

	require.NoError(t, err)
	assert.False(t, p.IsPaid())
	assert.Nil(t, p.PaidAt())

	n, err := bookPurchaseRepo.CountByPurchase(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Zero(t, n)

	lines, err := cartRepo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckout_SnapshotFrozenAtCheckout(t *testing.T) {
	cartRepo := &fakeCartRepo{}
	purchaseRepo := &fakePurchaseRepo{}
	readModel := &fakeReadModel{views: catalogViews()}
	clk := clock.NewFixed(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))
	uc := NewCheckoutUseCase(cartRepo, purchaseRepo, &fakeBookPurchaseRepo{}, readModel, fakeTx{}, clk, logger.NewNop())
	seedCart(t, cartRepo, 7, 1)

	p, err := uc.Execute(context.Background(), CheckoutCommand{UserID: 7, SynchronousPayment: true})
	require.NoError(t, err)

	// a later catalog edit does not reach the stored snapshot
	view := readModel.views[1]
	view.Price = 99.99
	readModel.views[1] = view

	stored, err := purchaseRepo.GetByID(context.Background(), p.ID(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 12.50, stored.Snapshot()[0].Price, 0.0001)
}

func TestCheckout_OwnershipWriteFailureLeavesCartIntact(t *testing.T) {
	cartRepo, _, bookPurchaseRepo, uc, _ := newCheckoutFixture()
	seedCart(t, cartRepo, 7, 1, 2)
	bookPurchaseRepo.failBatch = apperrors.NewInternalError("book_purchases insert failed")

	_, err := uc.Execute(context.Background(), CheckoutCommand{UserID: 7, SynchronousPayment: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create book purchases")

	lines, listErr := cartRepo.ListByUser(context.Background(), 7)
	require.NoError(t, listErr)
	assert.Len(t, lines, 2)
	assert.Empty(t, bookPurchaseRepo.links)
}

func TestCheckout_PurchaseCreateFailureLeavesCartIntact(t *testing.T) {
	cartRepo, purchaseRepo, bookPurchaseRepo, uc, _ := newCheckoutFixture()
	seedCart(t, cartRepo, 7, 1, 2)
	purchaseRepo.failCreate = apperrors.NewInternalError("purchases insert failed")

	_, err := uc.Execute(context.Background(), CheckoutCommand{UserID: 7, SynchronousPayment: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create purchase")

	lines, listErr := cartRepo.ListByUser(context.Background(), 7)
	require.NoError(t, listErr)
	assert.Len(t, lines, 2)
	assert.Empty(t, purchaseRepo.purchases)
	assert.Empty(t, bookPurchaseRepo.links)
}
