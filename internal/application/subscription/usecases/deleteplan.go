package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// DeletePlanUseCase removes a plan from the catalog. A plan with active
// subscribers cannot be removed; subscribers must churn off it first.
type DeletePlanUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.UserSubscriptionRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(
	planRepo subscription.PlanRepository,
	subRepo subscription.UserSubscriptionRepository,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{planRepo: planRepo, subRepo: subRepo, logger: logger}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("Subscription plan with ID %d was not found.", planID))
	}

	subscribers, err := uc.subRepo.CountByPlanID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to count plan subscribers", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to count plan subscribers: %w", err)
	}
	if subscribers > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("Cannot delete plan since there are %d users who are subscribed to it.", subscribers),
		)
	}

	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		uc.logger.Errorw("failed to delete subscription plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete subscription plan: %w", err)
	}

	uc.logger.Infow("subscription plan deleted", "plan_id", planID, "name", plan.Name())
	return nil
}
