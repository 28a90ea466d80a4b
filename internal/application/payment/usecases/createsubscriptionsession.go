package usecases

import (
	"context"
	"fmt"
	"math"

	"bookworm/internal/domain/subscription"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CreateSubscriptionSessionCommand opens a payment page for enrolling the
// customer in a plan. The enrollment itself happens when the gateway
// confirms payment.
type CreateSubscriptionSessionCommand struct {
	CustomerID    uint
	CustomerEmail string
	PlanID        uint
}

// CreateSubscriptionSessionUseCase opens a hosted checkout session for
// one month of a subscription plan.
type CreateSubscriptionSessionUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.UserSubscriptionRepository
	gateway  Gateway
	logger   logger.Interface
}

func NewCreateSubscriptionSessionUseCase(
	planRepo subscription.PlanRepository,
	subRepo subscription.UserSubscriptionRepository,
	gateway Gateway,
	logger logger.Interface,
) *CreateSubscriptionSessionUseCase {
	return &CreateSubscriptionSessionUseCase{
		planRepo: planRepo,
		subRepo:  subRepo,
		gateway:  gateway,
		logger:   logger,
	}
}

func (uc *CreateSubscriptionSessionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionSessionCommand) (*SessionRef, error) {
	existing, err := uc.subRepo.GetByUserID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to look up current subscription", "error", err, "user_id", cmd.CustomerID)
		return nil, fmt.Errorf("failed to look up current subscription: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("You are already subscribed to a plan.")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Subscription plan with ID %d was not found.", cmd.PlanID))
	}

	item := SessionLineItem{
		Name:        fmt.Sprintf("Subscription plan: %q", plan.Name()),
		Description: fmt.Sprintf("Read %d books per month.", plan.BooksPerMonth()),
		AmountCents: int64(math.Round(plan.PricePerMonth() * 100)),
	}

	session, err := uc.gateway.CreateSubscriptionSession(ctx, CheckoutCustomer{ID: cmd.CustomerID, Email: cmd.CustomerEmail}, item, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to create subscription session", "error", err, "plan_id", plan.ID())
		return nil, fmt.Errorf("failed to create subscription session: %w", err)
	}

	uc.logger.Infow("subscription session created",
		"plan_id", plan.ID(),
		"user_id", cmd.CustomerID,
		"session_id", session.ID,
	)
	return session, nil
}
