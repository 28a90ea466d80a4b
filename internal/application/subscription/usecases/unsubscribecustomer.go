package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// UnsubscribeCustomerUseCase cancels a customer's enrollment. Cancellation
// is deletion; started-reading history survives it.
type UnsubscribeCustomerUseCase struct {
	subRepo subscription.UserSubscriptionRepository
	logger  logger.Interface
}

func NewUnsubscribeCustomerUseCase(
	subRepo subscription.UserSubscriptionRepository,
	logger logger.Interface,
) *UnsubscribeCustomerUseCase {
	return &UnsubscribeCustomerUseCase{subRepo: subRepo, logger: logger}
}

func (uc *UnsubscribeCustomerUseCase) Execute(ctx context.Context, userID uint) error {
	sub, err := uc.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to look up current subscription", "error", err, "user_id", userID)
		return fmt.Errorf("failed to look up current subscription: %w", err)
	}
	if sub == nil {
		return apperrors.NewValidationError("You are not subscribed to a plan.")
	}

	if err := uc.subRepo.Delete(ctx, sub.ID()); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	uc.logger.Infow("customer unsubscribed", "user_id", userID, "subscription_id", sub.ID())
	return nil
}
