package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/cart"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// RemoveItemUseCase deletes a single cart line. The delete is scoped by
// both the line ID and the owning user so nobody can remove lines from
// another user's cart.
type RemoveItemUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewRemoveItemUseCase(cartRepo cart.Repository, logger logger.Interface) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo, logger: logger}
}

func (uc *RemoveItemUseCase) Execute(ctx context.Context, userID, cartLineID uint) error {
	removed, err := uc.cartRepo.DeleteByIDAndUser(ctx, cartLineID, userID)
	if err != nil {
		uc.logger.Errorw("failed to remove cart line", "error", err, "user_id", userID, "line_id", cartLineID)
		return fmt.Errorf("failed to remove cart line: %w", err)
	}
	if removed == 0 {
		return apperrors.NewNotFoundError("Cart line not found.")
	}
	return nil
}
