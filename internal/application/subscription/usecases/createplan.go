package usecases

import (
	"context"
	"fmt"
	"math"

	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CreatePlanCommand carries the terms of a new subscription plan.
// BooksPerMonth is a float because the API accepts fractional input and
// rounds it to the nearest whole number.
type CreatePlanCommand struct {
	Name          string
	BooksPerMonth float64
	PricePerMonth float64
}

// CreatePlanUseCase adds a plan to the subscription catalog.
type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*PlanDTO, error) {
	plan, err := subscription.NewPlan(cmd.Name, int(math.Round(cmd.BooksPerMonth)), cmd.PricePerMonth)
	if err != nil {
		return nil, err
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("Subscription plan with that name already exists")
		}
		uc.logger.Errorw("failed to create subscription plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create subscription plan: %w", err)
	}

	uc.logger.Infow("subscription plan created", "plan_id", plan.ID(), "name", plan.Name())

	dto := toPlanDTO(plan)
	return &dto, nil
}
