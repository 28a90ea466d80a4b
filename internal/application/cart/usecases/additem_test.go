package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

func newAddItemFixture() (*fakeCartRepo, *fakeBookPurchaseRepo, *AddItemUseCase) {
	cartRepo := &fakeCartRepo{}
	bookPurchaseRepo := &fakeBookPurchaseRepo{}
	readModel := &fakeReadModel{views: catalogViews()}
	clk := clock.NewFixed(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	uc := NewAddItemUseCase(cartRepo, bookPurchaseRepo, readModel, clk, logger.NewNop())
	return cartRepo, bookPurchaseRepo, uc
}

func TestAddItem(t *testing.T) {
	_, _, uc := newAddItemFixture()

	line, err := uc.Execute(context.Background(), 7, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(1), line.BookID)
	assert.Equal(t, "War and Peace", line.Title)
	assert.NotZero(t, line.ID)
}

func TestAddItem_Twice(t *testing.T) {
	_, _, uc := newAddItemFixture()

	_, err := uc.Execute(context.Background(), 7, 1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Contains(t, err.Error(), "already in your cart")
}

func TestAddItem_AlreadyOwned(t *testing.T) {
	_, bookPurchaseRepo, uc := newAddItemFixture()

	link, err := purchase.NewBookPurchase(10, 1, 7, catalog.BookLineView{BookID: 1, Title: "War and Peace", Price: 12.50})
	require.NoError(t, err)
	require.NoError(t, bookPurchaseRepo.CreateBatch(context.Background(), []*purchase.BookPurchase{link}))

	_, err = uc.Execute(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "already own this book")
}
