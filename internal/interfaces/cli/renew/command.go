// Package renew implements the one-shot subscription renewal CLI command.
package renew

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	subscriptionusecases "bookworm/internal/application/subscription/usecases"
	"bookworm/internal/infrastructure/config"
	"bookworm/internal/infrastructure/database"
	"bookworm/internal/infrastructure/payment"
	"bookworm/internal/infrastructure/repository"
	"bookworm/internal/infrastructure/scheduler"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/logger"
)

var env string

// NewCommand runs a single renewal pass over subscriptions that expire
// inside the configured window. Meant for cron setups that prefer an
// external trigger over the in-process scheduler.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renew",
		Short: "Renew expiring subscriptions once and exit",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()
	clk := clock.System()

	subRepo := repository.NewUserSubscriptionRepository(gdb, log)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.Stripe.FrontendURL, log)

	expiringUC := subscriptionusecases.NewGetExpiringSubscriptionsUseCase(subRepo, clk, log)
	renewUC := subscriptionusecases.NewRenewSubscriptionUseCase(subRepo, gateway, clk, log)
	unsubscribeUC := subscriptionusecases.NewUnsubscribeCustomerUseCase(subRepo, log)

	interval := time.Duration(cfg.Subscription.RenewalIntervalMinutes) * time.Minute
	window := time.Duration(cfg.Subscription.RenewalWindowMinutes) * time.Minute
	job := scheduler.NewRenewalScheduler(expiringUC, renewUC, unsubscribeUC, interval, window, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	renewed := job.RenewExpiring(ctx)
	fmt.Printf("Renewed %d subscriptions.\n", renewed)
	return nil
}
