package routes

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/interfaces/http/handlers"
	"bookworm/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for plan and subscription
// routes.
type SubscriptionRouteConfig struct {
	PlanHandler         *handlers.PlanHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription plan management and the
// customer subscription lifecycle.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	plans := engine.Group("/subscription-plans")
	{
		plans.GET("", cfg.PlanHandler.List)

		plansAdmin := plans.Group("")
		plansAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		plansAdmin.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			plansAdmin.POST("", cfg.PlanHandler.Create)
			plansAdmin.PUT("/:id", cfg.PlanHandler.Update)
			plansAdmin.DELETE("/:id", cfg.PlanHandler.Delete)
		}
	}

	subscriptions := engine.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.POST("", cfg.SubscriptionHandler.Subscribe)
		subscriptions.DELETE("", cfg.SubscriptionHandler.Unsubscribe)
		subscriptions.GET("/me", cfg.SubscriptionHandler.GetMine)
	}

	reading := engine.Group("/books/:id/start-reading")
	reading.Use(cfg.AuthMiddleware.RequireAuth())
	{
		reading.POST("", cfg.SubscriptionHandler.StartReading)
	}
}
