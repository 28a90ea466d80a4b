package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

func seedPlan(t *testing.T, repo *fakePlanRepo, name string, booksPerMonth int, price float64) *subscription.Plan {
	t.Helper()
	plan, err := subscription.NewPlan(name, booksPerMonth, price)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), plan))
	return plan
}

func TestSubscribeCustomer(t *testing.T) {
	planRepo := &fakePlanRepo{}
	subRepo := &fakeSubRepo{}
	clk := clock.NewFixed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	plan := seedPlan(t, planRepo, "Economic", 5, 5.0)

	uc := NewSubscribeCustomerUseCase(planRepo, subRepo, clk, logger.NewNop())

	sub, err := uc.Execute(context.Background(), 7, plan.ID())

	require.NoError(t, err)
	assert.Equal(t, plan.ID(), sub.PlanID)
	assert.Equal(t, "Economic", sub.Name)
	assert.Equal(t, 5, sub.BooksPerMonth)
	assert.Equal(t, clk.Now(), sub.SubscribedAt)
	assert.Equal(t, clk.Now().AddDate(0, 1, 0), sub.ExpiresAt)
	assert.Nil(t, sub.LastRenewedAt)
}

func TestSubscribeCustomer_AlreadySubscribed(t *testing.T) {
	planRepo := &fakePlanRepo{}
	subRepo := &fakeSubRepo{}
	clk := clock.NewFixed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	plan := seedPlan(t, planRepo, "Economic", 5, 5.0)
	other := seedPlan(t, planRepo, "Deluxe", 20, 15.0)

	uc := NewSubscribeCustomerUseCase(planRepo, subRepo, clk, logger.NewNop())

	_, err := uc.Execute(context.Background(), 7, plan.ID())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 7, other.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "You are already subscribed to a plan.")
}

func TestSubscribeCustomer_TermsFrozenAtSubscribe(t *testing.T) {
	planRepo := &fakePlanRepo{}
	subRepo := &fakeSubRepo{}
	clk := clock.NewFixed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	plan := seedPlan(t, planRepo, "Economic", 5, 5.0)

	uc := NewSubscribeCustomerUseCase(planRepo, subRepo, clk, logger.NewNop())
	_, err := uc.Execute(context.Background(), 7, plan.ID())
	require.NoError(t, err)

	// a later plan edit does not change the subscriber's terms
	require.NoError(t, plan.Update("Economic", 2, 9.0))
	require.NoError(t, planRepo.Update(context.Background(), plan))

	sub, err := subRepo.GetByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, sub.BooksPerMonth())
	assert.InDelta(t, 5.0, sub.PricePerMonth(), 0.0001)
}

func TestSubscribeCustomer_UnknownPlan(t *testing.T) {
	uc := NewSubscribeCustomerUseCase(&fakePlanRepo{}, &fakeSubRepo{}, clock.NewFixed(time.Now().UTC()), logger.NewNop())

	_, err := uc.Execute(context.Background(), 7, 99)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUnsubscribeCustomer_NotSubscribed(t *testing.T) {
	uc := NewUnsubscribeCustomerUseCase(&fakeSubRepo{}, logger.NewNop())

	err := uc.Execute(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "You are not subscribed to a plan.")
}
