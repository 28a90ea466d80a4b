package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// ErrAlreadySubscribed reports that the customer already holds a
// subscription. Callers that retry enrollment (webhook reconciliation)
// match on it to tell a replay apart from a genuinely invalid enrollment.
var ErrAlreadySubscribed = apperrors.NewValidationError("You are already subscribed to a plan.")

// SubscribeCustomerUseCase enrolls a customer in a plan, freezing the
// plan's current terms into the enrollment. A user holds at most one
// subscription; the unique constraint on user_id backs up the pre-check
// against concurrent subscribe calls.
type SubscribeCustomerUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.UserSubscriptionRepository
	clock    clock.Clock
	logger   logger.Interface
}

func NewSubscribeCustomerUseCase(
	planRepo subscription.PlanRepository,
	subRepo subscription.UserSubscriptionRepository,
	clk clock.Clock,
	logger logger.Interface,
) *SubscribeCustomerUseCase {
	return &SubscribeCustomerUseCase{
		planRepo: planRepo,
		subRepo:  subRepo,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *SubscribeCustomerUseCase) Execute(ctx context.Context, userID, planID uint) (*UserSubscriptionDTO, error) {
	existing, err := uc.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to look up current subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to look up current subscription: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}

	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Subscription plan with ID %d was not found.", planID))
	}

	sub, err := subscription.NewUserSubscription(userID, plan, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.subRepo.Create(ctx, sub); err != nil {
		// a concurrent subscribe lost the race to the unique user_id index
		if apperrors.IsConflictError(err) {
			return nil, ErrAlreadySubscribed
		}
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", userID, "plan_id", planID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("customer subscribed",
		"user_id", userID,
		"plan_id", planID,
		"subscription_id", sub.ID(),
		"expires_at", sub.ExpiresAt(),
	)

	dto := toUserSubscriptionDTO(sub)
	return &dto, nil
}
