package subscription

import (
	"context"
	"time"
)

// PlanRepository persists subscription plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error

	// List returns all plans ordered by pricePerMonth ascending.
	List(ctx context.Context) ([]*Plan, error)
}

// UserSubscriptionRepository persists customer enrollments. The store
// enforces at most one row per user.
type UserSubscriptionRepository interface {
	Create(ctx context.Context, sub *UserSubscription) error
	GetByUserID(ctx context.Context, userID uint) (*UserSubscription, error)
	Update(ctx context.Context, sub *UserSubscription) error
	Delete(ctx context.Context, id uint) error

	// FindExpiring returns subscriptions whose expiresAt falls within
	// [now, now+window). Polled by the renewal job.
	FindExpiring(ctx context.Context, now time.Time, window time.Duration) ([]*UserSubscription, error)

	CountByPlanID(ctx context.Context, planID uint) (int64, error)
}

// StartedReadingBookRepository persists started-reading records.
type StartedReadingBookRepository interface {
	Create(ctx context.Context, record *StartedReadingBook) error

	// CountInPeriod counts records for the given user and subscription
	// whose startedAt falls within [from, to). This is the quota counter.
	CountInPeriod(ctx context.Context, userID, subscriptionID uint, from, to time.Time) (int64, error)

	ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error)
}
