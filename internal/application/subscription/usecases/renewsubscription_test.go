package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/logger"
)

type fakeCharger struct {
	fail    error
	charges []float64
}

func (f *fakeCharger) ChargeSubscription(ctx context.Context, userID uint, planName string, amount float64) error {
	if f.fail != nil {
		return f.fail
	}
	f.charges = append(f.charges, amount)
	return nil
}

func enrolledSubscription(t *testing.T, subRepo *fakeSubRepo, subscribedAt time.Time) *subscription.UserSubscription {
	t.Helper()
	plan := subscription.ReconstructPlan(1, "Economic", 5, 5.0, time.Time{}, time.Time{})
	sub, err := subscription.NewUserSubscription(7, plan, subscribedAt)
	require.NoError(t, err)
	require.NoError(t, subRepo.Create(context.Background(), sub))
	return sub
}

func TestRenewSubscription(t *testing.T) {
	subRepo := &fakeSubRepo{}
	charger := &fakeCharger{}
	subscribedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sub := enrolledSubscription(t, subRepo, subscribedAt)

	now := time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC)
	uc := NewRenewSubscriptionUseCase(subRepo, charger, clock.NewFixed(now), logger.NewNop())

	dto, err := uc.Execute(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, []float64{5.0}, charger.charges)
	assert.Equal(t, now.AddDate(0, 1, 0), dto.ExpiresAt)
	require.NotNil(t, dto.LastRenewedAt)
	assert.Equal(t, now, *dto.LastRenewedAt)
	// the period start is kept, so the quota window only widens
	assert.Equal(t, subscribedAt, dto.SubscribedAt)
}

func TestRenewSubscription_ChargeFails(t *testing.T) {
	subRepo := &fakeSubRepo{}
	charger := &fakeCharger{fail: errors.New("card declined")}
	sub := enrolledSubscription(t, subRepo, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	originalExpiry := sub.ExpiresAt()

	uc := NewRenewSubscriptionUseCase(subRepo, charger, clock.NewFixed(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)), logger.NewNop())

	_, err := uc.Execute(context.Background(), sub)

	require.Error(t, err)
	assert.Equal(t, originalExpiry, sub.ExpiresAt())
	assert.Nil(t, sub.LastRenewedAt())
}

func TestGetExpiringSubscriptions_WindowBounds(t *testing.T) {
	subRepo := &fakeSubRepo{}
	// expires June 1
	enrolledSubscription(t, subRepo, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	now := time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC)
	uc := NewGetExpiringSubscriptionsUseCase(subRepo, clock.NewFixed(now), logger.NewNop())

	subs, err := uc.Execute(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	// outside the window nothing is picked up
	early := NewGetExpiringSubscriptionsUseCase(subRepo, clock.NewFixed(now.Add(-24*time.Hour)), logger.NewNop())
	subs, err = early.Execute(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
