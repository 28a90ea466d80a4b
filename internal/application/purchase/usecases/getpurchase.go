package usecases

import (
	"context"

	"bookworm/internal/domain/purchase"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// GetPurchaseQuery loads one ledger entry. A nil UserID skips the
// ownership filter and is reserved for administrators; with a UserID set,
// someone else's purchase is indistinguishable from a missing one.
type GetPurchaseQuery struct {
	PurchaseID uint
	UserID     *uint
}

// GetPurchaseUseCase reads a single purchase from the ledger.
type GetPurchaseUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewGetPurchaseUseCase(purchaseRepo purchase.Repository, logger logger.Interface) *GetPurchaseUseCase {
	return &GetPurchaseUseCase{purchaseRepo: purchaseRepo, logger: logger}
}

func (uc *GetPurchaseUseCase) Execute(ctx context.Context, query GetPurchaseQuery) (*PurchaseDTO, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, query.PurchaseID, query.UserID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Purchase not found.")
	}

	dto := toPurchaseDTO(p)
	return &dto, nil
}
