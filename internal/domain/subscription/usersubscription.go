package subscription

import (
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// UserSubscription is a customer's enrollment in a plan. The plan terms
// (name, quota, price) are copied at subscribe time so later plan edits
// never retroactively change an existing subscriber's deal. A user has at
// most one subscription row; cancellation is deletion.
type UserSubscription struct {
	id            uint
	userID        uint
	planID        uint
	planName      string
	booksPerMonth int
	pricePerMonth float64
	subscribedAt  time.Time
	expiresAt     time.Time
	lastRenewedAt *time.Time
}

// NewUserSubscription enrolls a user in a plan, copying the plan's current
// terms. The first period runs one calendar month from now.
func NewUserSubscription(userID uint, plan *Plan, now time.Time) (*UserSubscription, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if plan == nil || plan.ID() == 0 {
		return nil, apperrors.NewValidationError("subscription plan is required")
	}

	return &UserSubscription{
		userID:        userID,
		planID:        plan.ID(),
		planName:      plan.Name(),
		booksPerMonth: plan.BooksPerMonth(),
		pricePerMonth: plan.PricePerMonth(),
		subscribedAt:  now,
		expiresAt:     now.AddDate(0, 1, 0),
	}, nil
}

// ReconstructUserSubscription rebuilds a subscription from persistence.
func ReconstructUserSubscription(
	id, userID, planID uint,
	planName string,
	booksPerMonth int,
	pricePerMonth float64,
	subscribedAt, expiresAt time.Time,
	lastRenewedAt *time.Time,
) (*UserSubscription, error) {
	if !expiresAt.After(subscribedAt) {
		return nil, apperrors.NewValidationError("subscription expiry must be after its start")
	}
	return &UserSubscription{
		id:            id,
		userID:        userID,
		planID:        planID,
		planName:      planName,
		booksPerMonth: booksPerMonth,
		pricePerMonth: pricePerMonth,
		subscribedAt:  subscribedAt,
		expiresAt:     expiresAt,
		lastRenewedAt: lastRenewedAt,
	}, nil
}

func (s *UserSubscription) ID() uint                  { return s.id }
func (s *UserSubscription) UserID() uint              { return s.userID }
func (s *UserSubscription) PlanID() uint              { return s.planID }
func (s *UserSubscription) PlanName() string          { return s.planName }
func (s *UserSubscription) BooksPerMonth() int        { return s.booksPerMonth }
func (s *UserSubscription) PricePerMonth() float64    { return s.pricePerMonth }
func (s *UserSubscription) SubscribedAt() time.Time   { return s.subscribedAt }
func (s *UserSubscription) ExpiresAt() time.Time      { return s.expiresAt }
func (s *UserSubscription) LastRenewedAt() *time.Time { return s.lastRenewedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *UserSubscription) SetID(id uint) { s.id = id }

// IsActive reports whether the subscription has not yet expired.
func (s *UserSubscription) IsActive(now time.Time) bool {
	return s.expiresAt.After(now)
}

// Renew advances the expiry one calendar month from now and records the
// renewal instant. Failed external payment never reaches here; the caller
// cancels instead.
func (s *UserSubscription) Renew(now time.Time) {
	renewedAt := now
	s.expiresAt = now.AddDate(0, 1, 0)
	s.lastRenewedAt = &renewedAt
}

// PeriodContains reports whether t falls inside the subscription's
// [subscribedAt, expiresAt) window. The quota count is bounded by this
// window, deliberately keeping the original system's behavior of not
// resetting the lower bound on renewal.
func (s *UserSubscription) PeriodContains(t time.Time) bool {
	return !t.Before(s.subscribedAt) && t.Before(s.expiresAt)
}
