package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/logger"
)

// RecurringCharger collects the recurring fee for a subscription period.
// Implemented by the payment gateway adapter.
type RecurringCharger interface {
	ChargeSubscription(ctx context.Context, userID uint, planName string, amount float64) error
}

// RenewSubscriptionUseCase charges one more period and advances the expiry
// a month from now. It never retries a failed charge; the renewal job
// cancels the subscription instead.
type RenewSubscriptionUseCase struct {
	subRepo subscription.UserSubscriptionRepository
	charger RecurringCharger
	clock   clock.Clock
	logger  logger.Interface
}

func NewRenewSubscriptionUseCase(
	subRepo subscription.UserSubscriptionRepository,
	charger RecurringCharger,
	clk clock.Clock,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subRepo: subRepo,
		charger: charger,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, sub *subscription.UserSubscription) (*UserSubscriptionDTO, error) {
	if err := uc.charger.ChargeSubscription(ctx, sub.UserID(), sub.PlanName(), sub.PricePerMonth()); err != nil {
		uc.logger.Warnw("subscription charge failed",
			"error", err,
			"user_id", sub.UserID(),
			"subscription_id", sub.ID(),
		)
		return nil, fmt.Errorf("failed to charge subscription: %w", err)
	}

	sub.Renew(uc.clock.Now())

	if err := uc.subRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist renewal", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to persist renewal: %w", err)
	}

	uc.logger.Infow("subscription renewed",
		"user_id", sub.UserID(),
		"subscription_id", sub.ID(),
		"expires_at", sub.ExpiresAt(),
	)

	dto := toUserSubscriptionDTO(sub)
	return &dto, nil
}
