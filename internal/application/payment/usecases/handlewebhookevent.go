package usecases

import (
	"context"
	"fmt"
	"strconv"

	"bookworm/internal/shared/constants"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

const (
	eventPaymentSucceeded = "payment_intent.succeeded"
	eventPaymentFailed    = "payment_intent.payment_failed"
	eventPaymentCreated   = "payment_intent.created"
)

// HandleWebhookEventUseCase dispatches verified gateway events. Successful
// payments reconcile a purchase or a subscription depending on the
// metadata discriminator; lifecycle noise is acknowledged without action;
// anything else is rejected as bad data so the gateway stops retrying it.
type HandleWebhookEventUseCase struct {
	completeCheckout     *CompleteCheckoutUseCase
	completeSubscription *CompleteSubscriptionPaymentUseCase
	logger               logger.Interface
}

func NewHandleWebhookEventUseCase(
	completeCheckout *CompleteCheckoutUseCase,
	completeSubscription *CompleteSubscriptionPaymentUseCase,
	logger logger.Interface,
) *HandleWebhookEventUseCase {
	return &HandleWebhookEventUseCase{
		completeCheckout:     completeCheckout,
		completeSubscription: completeSubscription,
		logger:               logger,
	}
}

func (uc *HandleWebhookEventUseCase) Execute(ctx context.Context, event WebhookEvent) error {
	uc.logger.Infow("webhook event received", "type", event.Type)

	switch event.Type {
	case eventPaymentSucceeded:
		return uc.applyPayment(ctx, event.Metadata)
	case eventPaymentFailed, eventPaymentCreated:
		// acknowledged but nothing to reconcile
		return nil
	default:
		return apperrors.NewValidationError(fmt.Sprintf("Unsupported webhook type %s.", event.Type))
	}
}

func (uc *HandleWebhookEventUseCase) applyPayment(ctx context.Context, metadata map[string]string) error {
	customerID, err := metadataID(metadata, "customerId")
	if err != nil {
		return err
	}

	switch metadata["type"] {
	case constants.PaymentTypePurchase:
		purchaseID, err := metadataID(metadata, "purchaseId")
		if err != nil {
			return err
		}
		return uc.completeCheckout.Execute(ctx, customerID, purchaseID)

	case constants.PaymentTypeSubscription:
		planID, err := metadataID(metadata, "subscriptionPlanId")
		if err != nil {
			return err
		}
		return uc.completeSubscription.Execute(ctx, customerID, planID)

	default:
		return apperrors.NewValidationError(fmt.Sprintf("Unsupported payment metadata type %q.", metadata["type"]))
	}
}

func metadataID(metadata map[string]string, key string) (uint, error) {
	raw, ok := metadata[key]
	if !ok || raw == "" {
		return 0, apperrors.NewValidationError(fmt.Sprintf("Webhook metadata is missing %s.", key))
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("Webhook metadata %s is not a valid ID.", key))
	}
	return uint(id), nil
}
