package routes

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/interfaces/http/handlers"
	"bookworm/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	BookHandler     *handlers.BookHandler
	AuthorHandler   *handlers.AuthorHandler
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures book, author and category routes. Reads
// are public; writes are admin-only.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	books := engine.Group("/books")
	{
		books.GET("", cfg.BookHandler.List)
		books.GET("/:id", cfg.BookHandler.Get)

		booksAdmin := books.Group("")
		booksAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		booksAdmin.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			booksAdmin.POST("", cfg.BookHandler.Create)
			booksAdmin.PUT("/:id", cfg.BookHandler.Update)
			booksAdmin.DELETE("/:id", cfg.BookHandler.Delete)
		}
	}

	authors := engine.Group("/authors")
	{
		authors.GET("", cfg.AuthorHandler.List)
		authors.GET("/:id", cfg.AuthorHandler.Get)

		authorsAdmin := authors.Group("")
		authorsAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		authorsAdmin.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			authorsAdmin.POST("", cfg.AuthorHandler.Create)
			authorsAdmin.PUT("/:id", cfg.AuthorHandler.Update)
			authorsAdmin.DELETE("/:id", cfg.AuthorHandler.Delete)
		}
	}

	categories := engine.Group("/categories")
	{
		categories.GET("", cfg.CategoryHandler.List)

		categoriesAdmin := categories.Group("")
		categoriesAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		categoriesAdmin.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			categoriesAdmin.POST("", cfg.CategoryHandler.Create)
			categoriesAdmin.PUT("/:id", cfg.CategoryHandler.Rename)
			categoriesAdmin.DELETE("/:id", cfg.CategoryHandler.Delete)
		}
	}
}
