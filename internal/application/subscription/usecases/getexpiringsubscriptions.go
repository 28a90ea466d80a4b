package usecases

import (
	"context"
	"fmt"
	"time"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/logger"
)

// GetExpiringSubscriptionsUseCase returns subscriptions whose expiry falls
// within [now, now+window). The renewal job polls this; the query itself
// has no side effects.
type GetExpiringSubscriptionsUseCase struct {
	subRepo subscription.UserSubscriptionRepository
	clock   clock.Clock
	logger  logger.Interface
}

func NewGetExpiringSubscriptionsUseCase(
	subRepo subscription.UserSubscriptionRepository,
	clk clock.Clock,
	logger logger.Interface,
) *GetExpiringSubscriptionsUseCase {
	return &GetExpiringSubscriptionsUseCase{subRepo: subRepo, clock: clk, logger: logger}
}

func (uc *GetExpiringSubscriptionsUseCase) Execute(ctx context.Context, window time.Duration) ([]*subscription.UserSubscription, error) {
	subs, err := uc.subRepo.FindExpiring(ctx, uc.clock.Now(), window)
	if err != nil {
		uc.logger.Errorw("failed to find expiring subscriptions", "error", err, "window", window)
		return nil, fmt.Errorf("failed to find expiring subscriptions: %w", err)
	}
	return subs, nil
}
