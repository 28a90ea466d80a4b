package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookworm/internal/application/payment/usecases"
	"bookworm/internal/shared/constants"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type fakeGateway struct {
	event *usecases.WebhookEvent
}

func (f *fakeGateway) CreateCheckoutSession(ctx context.Context, customer usecases.CheckoutCustomer, items []usecases.SessionLineItem, purchaseID uint) (*usecases.SessionRef, error) {
	return nil, nil
}

func (f *fakeGateway) CreateSubscriptionSession(ctx context.Context, customer usecases.CheckoutCustomer, item usecases.SessionLineItem, planID uint) (*usecases.SessionRef, error) {
	return nil, nil
}

func (f *fakeGateway) ParseWebhookEvent(payload []byte, signature string) (*usecases.WebhookEvent, error) {
	if f.event == nil {
		return nil, apperrors.NewValidationError("Invalid Stripe webhook request signature!")
	}
	return f.event, nil
}

func TestHandleStripeWebhook_BadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWebhookHandler(&fakeGateway{}, nil, logger.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{}`))
	c.Request.Header.Set(constants.HeaderStripeSignature, "t=1,v1=bogus")

	handler.HandleStripeWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Stripe webhook request signature!")
}

func TestHandleStripeWebhook_AcknowledgesNonSettlementEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gateway := &fakeGateway{event: &usecases.WebhookEvent{Type: "payment_intent.created"}}
	eventUC := usecases.NewHandleWebhookEventUseCase(nil, nil, logger.NewNop())
	handler := NewWebhookHandler(gateway, eventUC, logger.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{}`))

	handler.HandleStripeWebhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "received")
}

func TestRegister_InvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(nil, nil, nil, logger.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"not-an-email","password":"short"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
