package usecases

import "context"

// CheckoutCustomer identifies the paying customer to the gateway.
type CheckoutCustomer struct {
	ID    uint
	Email string
}

// SessionLineItem is one priced line of a hosted checkout session.
// Amounts are in cents, the gateway's native unit.
type SessionLineItem struct {
	Name        string
	Description string
	ImageURL    string
	AmountCents int64
}

// SessionRef points the frontend at a hosted payment page.
type SessionRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// WebhookEvent is a gateway delivery after signature verification. The
// metadata bag carries the IDs the session was created with.
type WebhookEvent struct {
	Type     string
	Metadata map[string]string
}

// Gateway abstracts the external payment provider. The infrastructure
// adapter implements it against Stripe.
type Gateway interface {
	// CreateCheckoutSession opens a hosted payment page for a pending
	// purchase. The session metadata ties the eventual webhook back to
	// the purchase and customer.
	CreateCheckoutSession(ctx context.Context, customer CheckoutCustomer, items []SessionLineItem, purchaseID uint) (*SessionRef, error)

	// CreateSubscriptionSession opens a hosted payment page for a plan
	// enrollment.
	CreateSubscriptionSession(ctx context.Context, customer CheckoutCustomer, item SessionLineItem, planID uint) (*SessionRef, error)

	// ParseWebhookEvent verifies the delivery signature and decodes the
	// event. A bad signature yields a validation error.
	ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}
