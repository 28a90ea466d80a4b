package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderStripeSignature = "Stripe-Signature"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"

	// User roles
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	// Database table names
	TableUsers               = "users"
	TableAuthors             = "authors"
	TableCategories          = "categories"
	TableBooks               = "books"
	TableShoppingCart        = "shopping_cart"
	TablePurchases           = "purchases"
	TableBookPurchases       = "book_purchases"
	TableSubscriptionPlans   = "subscription_plans"
	TableUserSubscriptions   = "user_subscriptions"
	TableStartedReadingBooks = "started_reading_books"

	// Payment
	PaymentMethodCard = "card"
	PaymentCurrency   = "usd"

	// Webhook metadata discriminators
	PaymentTypePurchase     = "purchase"
	PaymentTypeSubscription = "subscription"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
