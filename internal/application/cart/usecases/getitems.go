package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/cart"
	"bookworm/internal/domain/catalog"
	"bookworm/internal/shared/logger"
)

// GetItemsUseCase returns a user's cart content with its computed total.
// An empty cart is a valid result, never an error.
type GetItemsUseCase struct {
	cartRepo  cart.Repository
	readModel catalog.ReadModel
	logger    logger.Interface
}

func NewGetItemsUseCase(
	cartRepo cart.Repository,
	readModel catalog.ReadModel,
	logger logger.Interface,
) *GetItemsUseCase {
	return &GetItemsUseCase{
		cartRepo:  cartRepo,
		readModel: readModel,
		logger:    logger,
	}
}

func (uc *GetItemsUseCase) Execute(ctx context.Context, userID uint) (*CartContent, error) {
	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list cart lines", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	content := &CartContent{Items: make([]CartLineDTO, 0, len(lines))}
	for _, line := range lines {
		view, err := uc.readModel.ResolveBookForCartLine(ctx, line.BookID())
		if err != nil {
			uc.logger.Errorw("failed to resolve cart line book", "error", err, "book_id", line.BookID())
			return nil, fmt.Errorf("failed to resolve cart line: %w", err)
		}
		content.Items = append(content.Items, toCartLineDTO(line.ID(), view))
		content.Total += view.Price
	}

	return content, nil
}
