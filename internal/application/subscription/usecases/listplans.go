package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/logger"
)

// ListPlansUseCase returns the plan catalog ordered by monthly price,
// cheapest first.
type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}

	dtos := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, toPlanDTO(p))
	}
	return dtos, nil
}
