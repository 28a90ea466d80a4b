// Package scheduler runs the periodic subscription renewal job.
package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionusecases "bookworm/internal/application/subscription/usecases"
	"bookworm/internal/shared/logger"
)

const defaultInterval = 30 * time.Minute

// RenewalScheduler polls for subscriptions expiring within the lookahead
// window and renews each one. A failed renewal cancels the subscription
// instead of retrying, so a broken payment method does not accrue debt.
type RenewalScheduler struct {
	expiringUC    *subscriptionusecases.GetExpiringSubscriptionsUseCase
	renewUC       *subscriptionusecases.RenewSubscriptionUseCase
	unsubscribeUC *subscriptionusecases.UnsubscribeCustomerUseCase
	logger        logger.Interface
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
	interval      time.Duration
	window        time.Duration
}

func NewRenewalScheduler(
	expiringUC *subscriptionusecases.GetExpiringSubscriptionsUseCase,
	renewUC *subscriptionusecases.RenewSubscriptionUseCase,
	unsubscribeUC *subscriptionusecases.UnsubscribeCustomerUseCase,
	interval, window time.Duration,
	logger logger.Interface,
) *RenewalScheduler {
	// time.NewTicker panics on a non-positive interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &RenewalScheduler{
		expiringUC:    expiringUC,
		renewUC:       renewUC,
		unsubscribeUC: unsubscribeUC,
		logger:        logger,
		stopChan:      make(chan struct{}),
		interval:      interval,
		window:        window,
	}
}

// Start launches the renewal loop in a background goroutine.
func (s *RenewalScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting renewal scheduler", "interval", s.interval, "window", s.window)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully and waits for the loop to exit.
// Safe to call multiple times.
func (s *RenewalScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping renewal scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("renewal scheduler stopped")
	})
}

func (s *RenewalScheduler) runLoop(ctx context.Context) {
	// run once on startup so a restart never skips a window
	s.RenewExpiring(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("renewal scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.RenewExpiring(ctx)
		}
	}
}

// RenewExpiring runs one renewal pass and returns how many subscriptions
// were renewed. Exported so the CLI renew command can run a single pass.
func (s *RenewalScheduler) RenewExpiring(ctx context.Context) int {
	startTime := time.Now()

	expiring, err := s.expiringUC.Execute(ctx, s.window)
	if err != nil {
		s.logger.Errorw("failed to fetch expiring subscriptions", "error", err)
		return 0
	}
	if len(expiring) == 0 {
		return 0
	}

	renewed := 0
	for _, sub := range expiring {
		if _, err := s.renewUC.Execute(ctx, sub); err != nil {
			s.logger.Warnw("renewal failed, cancelling subscription",
				"error", err,
				"user_id", sub.UserID(),
				"subscription_id", sub.ID(),
			)
			if err := s.unsubscribeUC.Execute(ctx, sub.UserID()); err != nil {
				s.logger.Errorw("failed to cancel subscription after failed renewal",
					"error", err,
					"subscription_id", sub.ID(),
				)
			}
			continue
		}
		renewed++
	}

	s.logger.Infow("renewal pass completed",
		"renewed", renewed,
		"expiring", len(expiring),
		"duration", time.Since(startTime),
	)
	return renewed
}
