package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
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
	return nil
}

func (f *fakePurchaseRepo) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, int64, error) {
	var matched []*purchase.Purchase
	for _, p := range f.purchases {
		if filter.UserID == nil || p.UserID() == *filter.UserID {
			matched = append(matched, p)
		}
	}
	total := int64(len(matched))

	// page slicing, newest assumed last-in for the fake
	start := (filter.Page - 1) * filter.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func seedPurchase(t *testing.T, repo *fakePurchaseRepo, userID uint) *purchase.Purchase {
	t.Helper()
	snapshot := []catalog.BookLineView{{BookID: 1, Title: "War and Peace", Price: 12.50}}
	p, err := purchase.NewPurchase(userID, "card", snapshot, time.Date(2024, 5, 2, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func userIDPtr(id uint) *uint { return &id }

func TestGetPurchase_Owner(t *testing.T) {
	repo := &fakePurchaseRepo{}
	p := seedPurchase(t, repo, 7)

	uc := NewGetPurchaseUseCase(repo, logger.NewNop())

	dto, err := uc.Execute(context.Background(), GetPurchaseQuery{PurchaseID: p.ID(), UserID: userIDPtr(7)})

	require.NoError(t, err)
	assert.Equal(t, p.ID(), dto.ID)
	assert.InDelta(t, 12.50, dto.Total, 0.0001)
}

func TestGetPurchase_OtherUsersPurchaseLooksMissing(t *testing.T) {
	repo := &fakePurchaseRepo{}
	p := seedPurchase(t, repo, 7)

	uc := NewGetPurchaseUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), GetPurchaseQuery{PurchaseID: p.ID(), UserID: userIDPtr(8)})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	// same error shape as a genuinely missing purchase
	_, missingErr := uc.Execute(context.Background(), GetPurchaseQuery{PurchaseID: 999, UserID: userIDPtr(8)})
	assert.Equal(t, missingErr.Error(), err.Error())
}

func TestGetPurchase_AdminSeesAll(t *testing.T) {
	repo := &fakePurchaseRepo{}
	p := seedPurchase(t, repo, 7)

	uc := NewGetPurchaseUseCase(repo, logger.NewNop())

	dto, err := uc.Execute(context.Background(), GetPurchaseQuery{PurchaseID: p.ID()})

	require.NoError(t, err)
	assert.Equal(t, uint(7), dto.UserID)
}

func TestListPurchases_ScopedToUser(t *testing.T) {
	repo := &fakePurchaseRepo{}
	seedPurchase(t, repo, 7)
	seedPurchase(t, repo, 7)
	seedPurchase(t, repo, 8)

	uc := NewListPurchasesUseCase(repo, logger.NewNop())

	dtos, total, err := uc.Execute(context.Background(), ListPurchasesQuery{UserID: userIDPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, dtos, 2)

	all, total, err := uc.Execute(context.Background(), ListPurchasesQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}
