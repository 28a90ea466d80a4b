package handlers

import (
	"github.com/gin-gonic/gin"

	cartusecases "bookworm/internal/application/cart/usecases"
	"bookworm/internal/application/payment/usecases"
	"bookworm/internal/domain/user"
	"bookworm/internal/interfaces/http/middleware"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// PaymentHandler opens hosted checkout sessions on the payment gateway.
// The cart checkout here is the asynchronous path: the purchase stays
// pending until the gateway webhook confirms payment.
type PaymentHandler struct {
	checkoutUC            *cartusecases.CheckoutUseCase
	checkoutSessionUC     *usecases.CreateCheckoutSessionUseCase
	subscriptionSessionUC *usecases.CreateSubscriptionSessionUseCase
	userRepo              user.Repository
	logger                logger.Interface
}

func NewPaymentHandler(
	checkoutUC *cartusecases.CheckoutUseCase,
	checkoutSessionUC *usecases.CreateCheckoutSessionUseCase,
	subscriptionSessionUC *usecases.CreateSubscriptionSessionUseCase,
	userRepo user.Repository,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		checkoutUC:            checkoutUC,
		checkoutSessionUC:     checkoutSessionUC,
		subscriptionSessionUC: subscriptionSessionUC,
		userRepo:              userRepo,
		logger:                logger,
	}
}

type SubscriptionSessionRequest struct {
	PlanID uint `json:"planId" binding:"required"`
}

func (h *PaymentHandler) customerEmail(c *gin.Context) (string, error) {
	u, err := h.userRepo.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperrors.NewNotFoundError("User not found.")
	}
	return u.Email(), nil
}

// CreateCheckoutSession converts the cart into a pending purchase and
// opens a payment page for it.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	email, err := h.customerEmail(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.checkoutUC.Execute(c.Request.Context(), cartusecases.CheckoutCommand{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	session, err := h.checkoutSessionUC.Execute(c.Request.Context(), usecases.CreateCheckoutSessionCommand{
		CustomerID:    middleware.UserID(c),
		CustomerEmail: email,
		PurchaseID:    p.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"purchaseId": p.ID(), "sessionId": session.ID, "url": session.URL})
}

// CreateSubscriptionSession opens a payment page for one month of a plan.
func (h *PaymentHandler) CreateSubscriptionSession(c *gin.Context) {
	var req SubscriptionSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for subscription session", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid subscription session payload."))
		return
	}

	email, err := h.customerEmail(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	session, err := h.subscriptionSessionUC.Execute(c.Request.Context(), usecases.CreateSubscriptionSessionCommand{
		CustomerID:    middleware.UserID(c),
		CustomerEmail: email,
		PlanID:        req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"sessionId": session.ID, "url": session.URL})
}
