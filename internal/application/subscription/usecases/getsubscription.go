package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// GetSubscriptionUseCase returns a customer's current enrollment.
type GetSubscriptionUseCase struct {
	subRepo subscription.UserSubscriptionRepository
	logger  logger.Interface
}

func NewGetSubscriptionUseCase(subRepo subscription.UserSubscriptionRepository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*UserSubscriptionDTO, error) {
	sub, err := uc.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to look up current subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to look up current subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("You are not subscribed to a plan.")
	}

	dto := toUserSubscriptionDTO(sub)
	return &dto, nil
}
