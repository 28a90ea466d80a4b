package routes

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/interfaces/http/handlers"
	"bookworm/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	WebhookHandler *handlers.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPaymentRoutes configures gateway session routes and the webhook
// endpoint. The webhook is unauthenticated; the delivery signature is its
// credential.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	payments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		payments.POST("/checkout-session", cfg.PaymentHandler.CreateCheckoutSession)
		payments.POST("/subscription-session", cfg.PaymentHandler.CreateSubscriptionSession)
	}

	engine.POST("/webhooks/stripe", cfg.WebhookHandler.HandleStripeWebhook)
}
