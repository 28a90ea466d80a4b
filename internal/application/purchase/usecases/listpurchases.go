package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// ListPurchasesQuery pages through the ledger. A nil UserID lists every
// user's purchases and is reserved for administrators; handlers must set
// it for customer calls.
type ListPurchasesQuery struct {
	UserID     *uint
	Pagination utils.Pagination
}

// ListPurchasesUseCase reads the purchase ledger newest-placed first.
type ListPurchasesUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewListPurchasesUseCase(purchaseRepo purchase.Repository, logger logger.Interface) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{purchaseRepo: purchaseRepo, logger: logger}
}

func (uc *ListPurchasesUseCase) Execute(ctx context.Context, query ListPurchasesQuery) ([]PurchaseDTO, int64, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	purchases, total, err := uc.purchaseRepo.List(ctx, purchase.Filter{
		UserID:   query.UserID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list purchases", "error", err)
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}

	dtos := make([]PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		dtos = append(dtos, toPurchaseDTO(p))
	}
	return dtos, total, nil
}
