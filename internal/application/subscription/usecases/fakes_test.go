package usecases

import (
	"context"
	"time"

	"bookworm/internal/domain/purchase"
	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
)

type fakePlanRepo struct {
	plans  []*subscription.Plan
	nextID uint
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *subscription.Plan) error {
	for _, p := range f.plans {
		if p.Name() == plan.Name() {
			return apperrors.NewConflictError("plan name already taken")
		}
	}
	f.nextID++
	plan.SetID(f.nextID)
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	for _, p := range f.plans {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *subscription.Plan) error {
	for i, p := range f.plans {
		if p.ID() == plan.ID() {
			f.plans[i] = plan
			return nil
		}
	}
	return apperrors.NewNotFoundError("plan not found")
}

func (f *fakePlanRepo) Delete(ctx context.Context, id uint) error {
	for i, p := range f.plans {
		if p.ID() == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePlanRepo) List(ctx context.Context) ([]*subscription.Plan, error) {
	return f.plans, nil
}

type fakeSubRepo struct {
	subs   []*subscription.UserSubscription
	nextID uint
}

func (f *fakeSubRepo) Create(ctx context.Context, sub *subscription.UserSubscription) error {
	for _, s := range f.subs {
		if s.UserID() == sub.UserID() {
			return apperrors.NewConflictError("user already subscribed")
		}
	}
	f.nextID++
	sub.SetID(f.nextID)
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubRepo) GetByUserID(ctx context.Context, userID uint) (*subscription.UserSubscription, error) {
	for _, s := range f.subs {
		if s.UserID() == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubRepo) Update(ctx context.Context, sub *subscription.UserSubscription) error {
	for i, s := range f.subs {
		if s.ID() == sub.ID() {
			f.subs[i] = sub
			return nil
		}
	}
	return apperrors.NewNotFoundError("subscription not found")
}

func (f *fakeSubRepo) Delete(ctx context.Context, id uint) error {
	for i, s := range f.subs {
		if s.ID() == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSubRepo) FindExpiring(ctx context.Context, now time.Time, window time.Duration) ([]*subscription.UserSubscription, error) {
	var out []*subscription.UserSubscription
	limit := now.Add(window)
	for _, s := range f.subs {
		if !s.ExpiresAt().Before(now) && s.ExpiresAt().Before(limit) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubRepo) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var n int64
	for _, s := range f.subs {
		if s.PlanID() == planID {
			n++
		}
	}
	return n, nil
}

type fakeStartedRepo struct {
	records []*subscription.StartedReadingBook
	nextID  uint
}

func (f *fakeStartedRepo) Create(ctx context.Context, record *subscription.StartedReadingBook) error {
	for _, r := range f.records {
		if r.UserID() == record.UserID() && r.BookID() == record.BookID() {
			return apperrors.NewConflictError("book already started")
		}
	}
	f.nextID++
	record.SetID(f.nextID)
	f.records = append(f.records, record)
	return nil
}

func (f *fakeStartedRepo) CountInPeriod(ctx context.Context, userID, subscriptionID uint, from, to time.Time) (int64, error) {
	var n int64
	for _, r := range f.records {
		if r.UserID() != userID || r.UserSubscriptionID() != subscriptionID {
			continue
		}
		if !r.StartedAt().Before(from) && r.StartedAt().Before(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStartedRepo) ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error) {
	for _, r := range f.records {
		if r.UserID() == userID && r.BookID() == bookID {
			return true, nil
		}
	}
	return false, nil
}

type fakeOwnershipRepo struct {
	owned map[uint][]uint // userID -> bookIDs
}

func (f *fakeOwnershipRepo) CreateBatch(ctx context.Context, links []*purchase.BookPurchase) error {
	if f.owned == nil {
		f.owned = map[uint][]uint{}
	}
	for _, link := range links {
		f.owned[link.UserID()] = append(f.owned[link.UserID()], link.BookID())
	}
	return nil
}

func (f *fakeOwnershipRepo) ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error) {
	for _, id := range f.owned[userID] {
		if id == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOwnershipRepo) CountByPurchase(ctx context.Context, purchaseID uint) (int64, error) {
	return 0, nil
}
