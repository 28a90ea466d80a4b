package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subscriptionusecases "bookworm/internal/application/subscription/usecases"
	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type fakePurchaseRepo struct {
	purchases []*purchase.Purchase
	nextID    uint
}

func (f *fakePurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) error {
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
	return f.purchases, int64(len(f.purchases)), nil
}

type fakeBookPurchaseRepo struct {
	links []*purchase.BookPurchase
}

func (f *fakeBookPurchaseRepo) CreateBatch(ctx context.Context, links []*purchase.BookPurchase) error {
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

type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEnroller struct {
	enrolled map[uint]uint // userID -> planID
	fail     error
}

func (f *fakeEnroller) Execute(ctx context.Context, userID, planID uint) (*subscriptionusecases.UserSubscriptionDTO, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if f.enrolled == nil {
		f.enrolled = map[uint]uint{}
	}
	if _, ok := f.enrolled[userID]; ok {
		return nil, subscriptionusecases.ErrAlreadySubscribed
	}
	f.enrolled[userID] = planID
	return &subscriptionusecases.UserSubscriptionDTO{PlanID: planID}, nil
}

type webhookFixture struct {
	purchaseRepo     *fakePurchaseRepo
	bookPurchaseRepo *fakeBookPurchaseRepo
	enroller         *fakeEnroller
	uc               *HandleWebhookEventUseCase
}

func newWebhookFixture() *webhookFixture {
	f := &webhookFixture{
		purchaseRepo:     &fakePurchaseRepo{},
		bookPurchaseRepo: &fakeBookPurchaseRepo{},
		enroller:         &fakeEnroller{},
	}
	clk := clock.NewFixed(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))
	completeCheckout := NewCompleteCheckoutUseCase(f.purchaseRepo, f.bookPurchaseRepo, fakeTx{}, clk, logger.NewNop())
	completeSubscription := NewCompleteSubscriptionPaymentUseCase(f.enroller, logger.NewNop())
	f.uc = NewHandleWebhookEventUseCase(completeCheckout, completeSubscription, logger.NewNop())
	return f
}

func (f *webhookFixture) seedPendingPurchase(t *testing.T, userID uint) *purchase.Purchase {
	t.Helper()
	snapshot := []catalog.BookLineView{
		{BookID: 1, Title: "War and Peace", Price: 12.50, Author: catalog.LineAuthor{ID: 1, Name: "Leo Tolstoy"}},
		{BookID: 2, Title: "Anna Karenina", Price: 9.99, Author: catalog.LineAuthor{ID: 1, Name: "Leo Tolstoy"}},
	}
	p, err := purchase.NewPurchase(userID, "card", snapshot, time.Date(2024, 5, 2, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, f.purchaseRepo.Create(context.Background(), p))
	return p
}

func purchaseSucceededEvent(customerID, purchaseID string) WebhookEvent {
	return WebhookEvent{
		Type: "payment_intent.succeeded",
		Metadata: map[string]string{
			"type":       "purchase",
			"customerId": customerID,
			"purchaseId": purchaseID,
		},
	}
}

func TestHandleWebhookEvent_PurchasePayment(t *testing.T) {
	f := newWebhookFixture()
	p := f.seedPendingPurchase(t, 7)

	err := f.uc.Execute(context.Background(), purchaseSucceededEvent("7", "1"))

	require.NoError(t, err)
	assert.True(t, p.IsPaid())

	n, err := f.bookPurchaseRepo.CountByPurchase(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestHandleWebhookEvent_ReplayedDelivery(t *testing.T) {
	f := newWebhookFixture()
	f.seedPendingPurchase(t, 7)

	event := purchaseSucceededEvent("7", "1")
	require.NoError(t, f.uc.Execute(context.Background(), event))
	require.NoError(t, f.uc.Execute(context.Background(), event))

	// the replay did not duplicate ownership links
	n, err := f.bookPurchaseRepo.CountByPurchase(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestHandleWebhookEvent_WrongCustomer(t *testing.T) {
	f := newWebhookFixture()
	f.seedPendingPurchase(t, 7)

	err := f.uc.Execute(context.Background(), purchaseSucceededEvent("8", "1"))

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestHandleWebhookEvent_SubscriptionPayment(t *testing.T) {
	f := newWebhookFixture()

	event := WebhookEvent{
		Type: "payment_intent.succeeded",
		Metadata: map[string]string{
			"type":               "subscription",
			"customerId":         "7",
			"subscriptionPlanId": "2",
		},
	}

	require.NoError(t, f.uc.Execute(context.Background(), event))
	assert.Equal(t, uint(2), f.enroller.enrolled[7])

	// a replayed delivery finds the user already enrolled and succeeds
	require.NoError(t, f.uc.Execute(context.Background(), event))
}

func TestHandleWebhookEvent_SubscriptionEnrollmentRejected(t *testing.T) {
	f := newWebhookFixture()
	// a rejected enrollment (e.g. the plan no longer exists) is not a
	// replay and must not be reported as success
	f.enroller.fail = apperrors.NewValidationError("subscription references a missing user or plan")

	err := f.uc.Execute(context.Background(), WebhookEvent{
		Type: "payment_intent.succeeded",
		Metadata: map[string]string{
			"type":               "subscription",
			"customerId":         "7",
			"subscriptionPlanId": "2",
		},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Empty(t, f.enroller.enrolled)
}

func TestHandleWebhookEvent_NonSettlementEvents(t *testing.T) {
	f := newWebhookFixture()

	for _, eventType := range []string{"payment_intent.payment_failed", "payment_intent.created"} {
		err := f.uc.Execute(context.Background(), WebhookEvent{Type: eventType})
		require.NoError(t, err)
	}
	assert.Empty(t, f.bookPurchaseRepo.links)
}

func TestHandleWebhookEvent_UnsupportedType(t *testing.T) {
	f := newWebhookFixture()

	err := f.uc.Execute(context.Background(), WebhookEvent{Type: "charge.refunded"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestHandleWebhookEvent_MalformedMetadata(t *testing.T) {
	f := newWebhookFixture()

	err := f.uc.Execute(context.Background(), WebhookEvent{
		Type:     "payment_intent.succeeded",
		Metadata: map[string]string{"type": "purchase", "customerId": "abc", "purchaseId": "1"},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
