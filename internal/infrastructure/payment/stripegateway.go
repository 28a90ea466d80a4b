// Package payment adapts the Stripe API to the gateway contract the
// payment use cases depend on.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"

	paymentusecases "bookworm/internal/application/payment/usecases"
	"bookworm/internal/shared/constants"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// StripeGateway implements the payment gateway contract with Stripe
// hosted checkout sessions and signed webhooks.
type StripeGateway struct {
	webhookSecret string
	frontendURL   string
	logger        logger.Interface
}

func NewStripeGateway(secretKey, webhookSecret, frontendURL string, logger logger.Interface) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{
		webhookSecret: webhookSecret,
		frontendURL:   frontendURL,
		logger:        logger,
	}
}

func (g *StripeGateway) CreateCheckoutSession(
	ctx context.Context,
	customer paymentusecases.CheckoutCustomer,
	items []paymentusecases.SessionLineItem,
	purchaseID uint,
) (*paymentusecases.SessionRef, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, g.lineItem(item))
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(customer.Email),
		ClientReferenceID:  stripe.String(formatID(customer.ID)),
		PaymentMethodTypes: stripe.StringSlice([]string{constants.PaymentMethodCard}),
		LineItems:          lineItems,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"purchaseId": formatID(purchaseID),
				"customerId": formatID(customer.ID),
				"type":       constants.PaymentTypePurchase,
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment-successful?purchase_id=%d", g.frontendURL, purchaseID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/payment-failed?purchase_id=%d", g.frontendURL, purchaseID)),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		g.logger.Errorw("stripe checkout session creation failed", "error", err, "purchase_id", purchaseID)
		return nil, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}

	return &paymentusecases.SessionRef{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) CreateSubscriptionSession(
	ctx context.Context,
	customer paymentusecases.CheckoutCustomer,
	item paymentusecases.SessionLineItem,
	planID uint,
) (*paymentusecases.SessionRef, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(customer.Email),
		ClientReferenceID:  stripe.String(formatID(customer.ID)),
		PaymentMethodTypes: stripe.StringSlice([]string{constants.PaymentMethodCard}),
		LineItems:          []*stripe.CheckoutSessionLineItemParams{g.lineItem(item)},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"subscriptionPlanId": formatID(planID),
				"customerId":         formatID(customer.ID),
				"type":               constants.PaymentTypeSubscription,
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment-successful?subscription_plan_id=%d", g.frontendURL, planID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/payment-failed?subscription_plan_id=%d", g.frontendURL, planID)),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		g.logger.Errorw("stripe subscription session creation failed", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to create stripe subscription session: %w", err)
	}

	return &paymentusecases.SessionRef{ID: s.ID, URL: s.URL}, nil
}

// ChargeSubscription collects a renewal fee off-session. It requires the
// customer to have a default payment method attached on the Stripe side;
// without one the charge fails and the renewal job cancels the
// subscription.
func (g *StripeGateway) ChargeSubscription(ctx context.Context, userID uint, planName string, amount float64) error {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(amount * 100))),
		Currency:    stripe.String(constants.PaymentCurrency),
		Confirm:     stripe.Bool(true),
		OffSession:  stripe.Bool(true),
		Description: stripe.String(fmt.Sprintf("Subscription renewal: %q", planName)),
		Metadata: map[string]string{
			"customerId": formatID(userID),
			"type":       constants.PaymentTypeSubscription,
		},
	}
	params.Context = ctx

	if _, err := paymentintent.New(params); err != nil {
		return fmt.Errorf("failed to charge subscription renewal: %w", err)
	}
	return nil
}

// ParseWebhookEvent verifies the delivery signature and lifts the payment
// intent metadata out of the raw event.
func (g *StripeGateway) ParseWebhookEvent(payload []byte, signature string) (*paymentusecases.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid Stripe webhook request signature!")
	}

	var object struct {
		Metadata map[string]string `json:"metadata"`
	}
	if len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			return nil, apperrors.NewValidationError("Malformed Stripe webhook payload.")
		}
	}

	return &paymentusecases.WebhookEvent{
		Type:     string(event.Type),
		Metadata: object.Metadata,
	}, nil
}

func (g *StripeGateway) lineItem(item paymentusecases.SessionLineItem) *stripe.CheckoutSessionLineItemParams {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(item.Name),
	}
	if item.Description != "" {
		product.Description = stripe.String(item.Description)
	}
	if item.ImageURL != "" {
		product.Images = stripe.StringSlice([]string{item.ImageURL})
	}
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:    stripe.String(constants.PaymentCurrency),
			ProductData: product,
			UnitAmount:  stripe.Int64(item.AmountCents),
		},
		Quantity: stripe.Int64(1),
	}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
