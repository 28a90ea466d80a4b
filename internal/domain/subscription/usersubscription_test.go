package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscribedPlan(t *testing.T) *Plan {
	t.Helper()
	plan := newTestPlan(t)
	plan.SetID(7)
	return plan
}

func TestNewUserSubscription_CopiesPlanTerms(t *testing.T) {
	plan := newSubscribedPlan(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sub, err := NewUserSubscription(42, plan, now)

	require.NoError(t, err)
	assert.Equal(t, uint(42), sub.UserID())
	assert.Equal(t, uint(7), sub.PlanID())
	assert.Equal(t, "Economic", sub.PlanName())
	assert.Equal(t, 5, sub.BooksPerMonth())
	assert.Equal(t, 5.0, sub.PricePerMonth())
	assert.Equal(t, now, sub.SubscribedAt())
	assert.Equal(t, now.AddDate(0, 1, 0), sub.ExpiresAt())
	assert.Nil(t, sub.LastRenewedAt())
}

func TestNewUserSubscription_TermsSurvivePlanEdit(t *testing.T) {
	plan := newSubscribedPlan(t)
	now := time.Now().UTC()

	sub, err := NewUserSubscription(42, plan, now)
	require.NoError(t, err)

	// editing the plan afterwards must not change the subscriber's deal
	require.NoError(t, plan.Update("Economic", 1, 99.0))

	assert.Equal(t, 5, sub.BooksPerMonth())
	assert.Equal(t, 5.0, sub.PricePerMonth())
}

func TestNewUserSubscription_RequiresUserAndPlan(t *testing.T) {
	plan := newSubscribedPlan(t)
	now := time.Now().UTC()

	_, err := NewUserSubscription(0, plan, now)
	require.Error(t, err)

	_, err = NewUserSubscription(42, nil, now)
	require.Error(t, err)

	unsaved := newTestPlan(t) // no ID yet
	_, err = NewUserSubscription(42, unsaved, now)
	require.Error(t, err)
}

func TestUserSubscription_IsActive(t *testing.T) {
	plan := newSubscribedPlan(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sub, err := NewUserSubscription(42, plan, now)
	require.NoError(t, err)

	assert.True(t, sub.IsActive(now))
	assert.True(t, sub.IsActive(now.AddDate(0, 1, 0).Add(-time.Second)))
	assert.False(t, sub.IsActive(now.AddDate(0, 1, 0)))
	assert.False(t, sub.IsActive(now.AddDate(0, 2, 0)))
}

func TestUserSubscription_Renew(t *testing.T) {
	plan := newSubscribedPlan(t)
	subscribed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sub, err := NewUserSubscription(42, plan, subscribed)
	require.NoError(t, err)

	renewTime := subscribed.AddDate(0, 1, 0).Add(-30 * time.Minute)
	sub.Renew(renewTime)

	assert.Equal(t, renewTime.AddDate(0, 1, 0), sub.ExpiresAt())
	require.NotNil(t, sub.LastRenewedAt())
	assert.Equal(t, renewTime, *sub.LastRenewedAt())
	// the period lower bound keeps the original subscribe date
	assert.Equal(t, subscribed, sub.SubscribedAt())
}

func TestUserSubscription_PeriodContains(t *testing.T) {
	plan := newSubscribedPlan(t)
	subscribed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sub, err := NewUserSubscription(42, plan, subscribed)
	require.NoError(t, err)

	assert.True(t, sub.PeriodContains(subscribed))
	assert.True(t, sub.PeriodContains(subscribed.AddDate(0, 0, 20)))
	assert.False(t, sub.PeriodContains(subscribed.Add(-time.Second)))
	assert.False(t, sub.PeriodContains(sub.ExpiresAt()))
}

func TestReconstructUserSubscription_RejectsInvertedWindow(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructUserSubscription(1, 42, 7, "Economic", 5, 5.0, now, now.Add(-time.Hour), nil)

	require.Error(t, err)
}
