package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type startReadingFixture struct {
	subRepo     *fakeSubRepo
	startedRepo *fakeStartedRepo
	ownership   *fakeOwnershipRepo
	clk         *clock.Fixed
	uc          *StartReadingBookUseCase
}

func newStartReadingFixture(t *testing.T) *startReadingFixture {
	t.Helper()
	f := &startReadingFixture{
		subRepo:     &fakeSubRepo{},
		startedRepo: &fakeStartedRepo{},
		ownership:   &fakeOwnershipRepo{},
		clk:         clock.NewFixed(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)),
	}
	f.uc = NewStartReadingBookUseCase(f.subRepo, f.startedRepo, f.ownership, f.clk, logger.NewNop())
	return f
}

// subscribe enrolls user 7 in a 5-books-per-month plan starting May 1.
func (f *startReadingFixture) subscribe(t *testing.T) *subscription.UserSubscription {
	t.Helper()
	plan := subscription.ReconstructPlan(1, "Economic", 5, 5.0, time.Time{}, time.Time{})
	sub, err := subscription.NewUserSubscription(7, plan, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, f.subRepo.Create(context.Background(), sub))
	return sub
}

func TestStartReadingBook(t *testing.T) {
	f := newStartReadingFixture(t)
	sub := f.subscribe(t)

	record, err := f.uc.Execute(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), record.BookID)
	assert.Equal(t, sub.ID(), record.UserSubscriptionID)
	assert.Equal(t, f.clk.Now(), record.StartedAt)
}

func TestStartReadingBook_NotSubscribed(t *testing.T) {
	f := newStartReadingFixture(t)

	_, err := f.uc.Execute(context.Background(), 7, 3)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "not subscribed")
}

func TestStartReadingBook_ExpiredSubscription(t *testing.T) {
	f := newStartReadingFixture(t)
	f.subscribe(t)
	f.clk.Advance(45 * 24 * time.Hour)

	_, err := f.uc.Execute(context.Background(), 7, 3)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "not subscribed")
}

func TestStartReadingBook_OwnedBook(t *testing.T) {
	f := newStartReadingFixture(t)
	f.subscribe(t)

	link, err := purchase.NewBookPurchase(1, 3, 7, catalog.BookLineView{BookID: 3, Title: "Dead Souls", Price: 4.20})
	require.NoError(t, err)
	require.NoError(t, f.ownership.CreateBatch(context.Background(), []*purchase.BookPurchase{link}))

	_, err = f.uc.Execute(context.Background(), 7, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already own this book")
}

func TestStartReadingBook_QuotaReached(t *testing.T) {
	f := newStartReadingFixture(t)
	f.subscribe(t)

	for bookID := uint(1); bookID <= 5; bookID++ {
		_, err := f.uc.Execute(context.Background(), 7, bookID)
		require.NoError(t, err)
	}

	_, err := f.uc.Execute(context.Background(), 7, 6)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "quota of 5 books")
	assert.Contains(t, err.Error(), "2024-05-01")
	assert.Contains(t, err.Error(), "2024-06-01")
}

func TestStartReadingBook_SameBookTwice(t *testing.T) {
	f := newStartReadingFixture(t)
	f.subscribe(t)

	_, err := f.uc.Execute(context.Background(), 7, 3)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), 7, 3)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "can already read this book")
}

func TestDeletePlan_WithSubscribers(t *testing.T) {
	planRepo := &fakePlanRepo{}
	subRepo := &fakeSubRepo{}
	clk := clock.NewFixed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	plan := seedPlan(t, planRepo, "Economic", 5, 5.0)

	subscribeUC := NewSubscribeCustomerUseCase(planRepo, subRepo, clk, logger.NewNop())
	for userID := uint(1); userID <= 3; userID++ {
		_, err := subscribeUC.Execute(context.Background(), userID, plan.ID())
		require.NoError(t, err)
	}

	deleteUC := NewDeletePlanUseCase(planRepo, subRepo, logger.NewNop())
	err := deleteUC.Execute(context.Background(), plan.ID())

	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Cannot delete plan since there are %d users who are subscribed to it.", 3), apperrors.GetAppError(err).Message)

	// the plan is still listed
	plans, err := planRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestDeletePlan_WithoutSubscribers(t *testing.T) {
	planRepo := &fakePlanRepo{}
	plan := seedPlan(t, planRepo, "Economic", 5, 5.0)

	deleteUC := NewDeletePlanUseCase(planRepo, &fakeSubRepo{}, logger.NewNop())
	require.NoError(t, deleteUC.Execute(context.Background(), plan.ID()))

	plans, err := planRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}
