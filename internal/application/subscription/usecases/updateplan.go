package usecases

import (
	"context"
	"fmt"
	"math"

	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// UpdatePlanCommand carries a partial plan edit. Nil fields are left
// unchanged. Edits never touch existing subscribers, whose terms were
// frozen at subscribe time.
type UpdatePlanCommand struct {
	PlanID        uint
	Name          *string
	BooksPerMonth *float64
	PricePerMonth *float64
}

// UpdatePlanUseCase edits a plan's terms.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Subscription plan with ID %d was not found.", cmd.PlanID))
	}

	name := plan.Name()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	booksPerMonth := plan.BooksPerMonth()
	if cmd.BooksPerMonth != nil {
		booksPerMonth = int(math.Round(*cmd.BooksPerMonth))
	}
	pricePerMonth := plan.PricePerMonth()
	if cmd.PricePerMonth != nil {
		pricePerMonth = *cmd.PricePerMonth
	}

	if err := plan.Update(name, booksPerMonth, pricePerMonth); err != nil {
		return nil, err
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("Subscription plan with that name already exists")
		}
		uc.logger.Errorw("failed to update subscription plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to update subscription plan: %w", err)
	}

	uc.logger.Infow("subscription plan updated", "plan_id", plan.ID(), "name", plan.Name())

	dto := toPlanDTO(plan)
	return &dto, nil
}
