// Package http wires the application together behind a gin engine.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartusecases "bookworm/internal/application/cart/usecases"
	catalogusecases "bookworm/internal/application/catalog/usecases"
	paymentusecases "bookworm/internal/application/payment/usecases"
	purchaseusecases "bookworm/internal/application/purchase/usecases"
	subscriptionusecases "bookworm/internal/application/subscription/usecases"
	userusecases "bookworm/internal/application/user/usecases"
	"bookworm/internal/infrastructure/auth"
	"bookworm/internal/infrastructure/cache"
	"bookworm/internal/infrastructure/config"
	"bookworm/internal/infrastructure/payment"
	"bookworm/internal/infrastructure/repository"
	"bookworm/internal/infrastructure/scheduler"
	"bookworm/internal/interfaces/http/handlers"
	"bookworm/internal/interfaces/http/middleware"
	"bookworm/internal/interfaces/http/routes"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/db"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// Router builds the HTTP engine and the background renewal scheduler from
// one dependency graph.
type Router struct {
	engine    *gin.Engine
	scheduler *scheduler.RenewalScheduler
}

// NewRouter constructs every repository, use case and handler and mounts
// all routes.
func NewRouter(cfg *config.Config, gdb *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	clk := clock.System()
	txManager := db.NewTransactionManager(gdb)

	// Repositories.
	userRepo := repository.NewUserRepository(gdb, log)
	authorRepo := repository.NewAuthorRepository(gdb, log)
	categoryRepo := repository.NewCategoryRepository(gdb, log)
	bookRepo := repository.NewBookRepository(gdb, log)
	readModel := repository.NewCatalogReadModel(gdb, log)
	cartRepo := repository.NewCartRepository(gdb, log)
	purchaseRepo := repository.NewPurchaseRepository(gdb, log)
	bookPurchaseRepo := repository.NewBookPurchaseRepository(gdb, log)
	planRepo := repository.NewSubscriptionPlanRepository(gdb, log)
	subRepo := repository.NewUserSubscriptionRepository(gdb, log)
	startedRepo := repository.NewStartedReadingBookRepository(gdb, log)

	// Auth infrastructure.
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.SessionExpHours)
	sessionStore := cache.NewSessionStore(redisClient, time.Duration(cfg.Auth.SessionExpHours)*time.Hour)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	tokenIssuer := auth.NewSessionTokenIssuer(jwtService, sessionStore)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionStore, log)

	// Payment gateway.
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.Stripe.FrontendURL, log)

	// Use cases.
	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, tokenIssuer, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, tokenIssuer, log)
	logoutUC := userusecases.NewLogoutUseCase(tokenIssuer, log)

	authorUC := catalogusecases.NewAuthorUseCases(authorRepo, log)
	categoryUC := catalogusecases.NewCategoryUseCases(categoryRepo, log)
	createBookUC := catalogusecases.NewCreateBookUseCase(bookRepo, authorRepo, log)
	updateBookUC := catalogusecases.NewUpdateBookUseCase(bookRepo, log)
	listBooksUC := catalogusecases.NewListBooksUseCase(bookRepo, log)
	getBookUC := catalogusecases.NewGetBookUseCase(bookRepo, log)
	deleteBookUC := catalogusecases.NewDeleteBookUseCase(bookRepo, log)

	getItemsUC := cartusecases.NewGetItemsUseCase(cartRepo, readModel, log)
	addItemUC := cartusecases.NewAddItemUseCase(cartRepo, bookPurchaseRepo, readModel, clk, log)
	removeItemUC := cartusecases.NewRemoveItemUseCase(cartRepo, log)
	clearCartUC := cartusecases.NewClearCartUseCase(cartRepo, log)
	checkoutUC := cartusecases.NewCheckoutUseCase(cartRepo, purchaseRepo, bookPurchaseRepo, readModel, txManager, clk, log)

	listPurchasesUC := purchaseusecases.NewListPurchasesUseCase(purchaseRepo, log)
	getPurchaseUC := purchaseusecases.NewGetPurchaseUseCase(purchaseRepo, log)

	createPlanUC := subscriptionusecases.NewCreatePlanUseCase(planRepo, log)
	updatePlanUC := subscriptionusecases.NewUpdatePlanUseCase(planRepo, log)
	listPlansUC := subscriptionusecases.NewListPlansUseCase(planRepo, log)
	deletePlanUC := subscriptionusecases.NewDeletePlanUseCase(planRepo, subRepo, log)
	subscribeUC := subscriptionusecases.NewSubscribeCustomerUseCase(planRepo, subRepo, clk, log)
	unsubscribeUC := subscriptionusecases.NewUnsubscribeCustomerUseCase(subRepo, log)
	getSubscriptionUC := subscriptionusecases.NewGetSubscriptionUseCase(subRepo, log)
	startReadingUC := subscriptionusecases.NewStartReadingBookUseCase(subRepo, startedRepo, bookPurchaseRepo, clk, log)
	expiringUC := subscriptionusecases.NewGetExpiringSubscriptionsUseCase(subRepo, clk, log)
	renewUC := subscriptionusecases.NewRenewSubscriptionUseCase(subRepo, gateway, clk, log)

	checkoutSessionUC := paymentusecases.NewCreateCheckoutSessionUseCase(purchaseRepo, gateway, log)
	subscriptionSessionUC := paymentusecases.NewCreateSubscriptionSessionUseCase(planRepo, subRepo, gateway, log)
	completeCheckoutUC := paymentusecases.NewCompleteCheckoutUseCase(purchaseRepo, bookPurchaseRepo, txManager, clk, log)
	completeSubscriptionUC := paymentusecases.NewCompleteSubscriptionPaymentUseCase(subscribeUC, log)
	webhookEventUC := paymentusecases.NewHandleWebhookEventUseCase(completeCheckoutUC, completeSubscriptionUC, log)

	// Handlers.
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, log)
	bookHandler := handlers.NewBookHandler(createBookUC, updateBookUC, listBooksUC, getBookUC, deleteBookUC, log)
	authorHandler := handlers.NewAuthorHandler(authorUC, log)
	categoryHandler := handlers.NewCategoryHandler(categoryUC, log)
	cartHandler := handlers.NewCartHandler(getItemsUC, addItemUC, removeItemUC, clearCartUC, checkoutUC, log)
	purchaseHandler := handlers.NewPurchaseHandler(listPurchasesUC, getPurchaseUC, log)
	planHandler := handlers.NewPlanHandler(createPlanUC, updatePlanUC, listPlansUC, deletePlanUC, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscribeUC, unsubscribeUC, getSubscriptionUC, startReadingUC, log)
	paymentHandler := handlers.NewPaymentHandler(checkoutUC, checkoutSessionUC, subscriptionSessionUC, userRepo, log)
	webhookHandler := handlers.NewWebhookHandler(gateway, webhookEventUC, log)

	// Routes.
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler, AuthMiddleware: authMiddleware})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		BookHandler:     bookHandler,
		AuthorHandler:   authorHandler,
		CategoryHandler: categoryHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupCartRoutes(engine, &routes.CartRouteConfig{
		CartHandler:    cartHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupPurchaseRoutes(engine, &routes.PurchaseRouteConfig{
		PurchaseHandler: purchaseHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		PlanHandler:         planHandler,
		SubscriptionHandler: subscriptionHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupPaymentRoutes(engine, &routes.PaymentRouteConfig{
		PaymentHandler: paymentHandler,
		WebhookHandler: webhookHandler,
		AuthMiddleware: authMiddleware,
	})

	renewalScheduler := scheduler.NewRenewalScheduler(
		expiringUC,
		renewUC,
		unsubscribeUC,
		time.Duration(cfg.Subscription.RenewalIntervalMinutes)*time.Minute,
		time.Duration(cfg.Subscription.RenewalWindowMinutes)*time.Minute,
		log,
	)

	return &Router{engine: engine, scheduler: renewalScheduler}
}

// Engine returns the configured gin engine.
func (r *Router) Engine() *gin.Engine { return r.engine }

// Scheduler returns the background renewal scheduler.
func (r *Router) Scheduler() *scheduler.RenewalScheduler { return r.scheduler }
