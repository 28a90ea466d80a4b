package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/cart"
	"bookworm/internal/shared/logger"
)

// ClearCartUseCase removes every line from a user's cart. Clearing an
// already-empty cart succeeds.
type ClearCartUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewClearCartUseCase(cartRepo cart.Repository, logger logger.Interface) *ClearCartUseCase {
	return &ClearCartUseCase{cartRepo: cartRepo, logger: logger}
}

func (uc *ClearCartUseCase) Execute(ctx context.Context, userID uint) error {
	if err := uc.cartRepo.ClearByUser(ctx, userID); err != nil {
		uc.logger.Errorw("failed to clear cart", "error", err, "user_id", userID)
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
