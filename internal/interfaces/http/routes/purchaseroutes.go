package routes

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/interfaces/http/handlers"
	"bookworm/internal/interfaces/http/middleware"
)

// PurchaseRouteConfig holds dependencies for purchase ledger routes.
type PurchaseRouteConfig struct {
	PurchaseHandler *handlers.PurchaseHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupPurchaseRoutes configures the purchase ledger routes.
func SetupPurchaseRoutes(engine *gin.Engine, cfg *PurchaseRouteConfig) {
	purchases := engine.Group("/purchases")
	purchases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		purchases.GET("", cfg.PurchaseHandler.List)
		purchases.GET("/:id", cfg.PurchaseHandler.Get)
	}
}
