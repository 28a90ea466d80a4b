package routes

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/interfaces/http/handlers"
	"bookworm/internal/interfaces/http/middleware"
)

// CartRouteConfig holds dependencies for cart routes.
type CartRouteConfig struct {
	CartHandler    *handlers.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCartRoutes configures the authenticated shopping cart routes.
func SetupCartRoutes(engine *gin.Engine, cfg *CartRouteConfig) {
	cart := engine.Group("/cart")
	cart.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cart.GET("", cfg.CartHandler.GetItems)
		cart.POST("/items", cfg.CartHandler.AddItem)
		cart.DELETE("/items/:id", cfg.CartHandler.RemoveItem)
		cart.DELETE("", cfg.CartHandler.Clear)
		cart.POST("/checkout", cfg.CartHandler.Checkout)
	}
}
