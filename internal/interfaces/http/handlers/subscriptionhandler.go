package handlers

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/application/subscription/usecases"
	"bookworm/internal/interfaces/http/middleware"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// SubscriptionHandler serves the customer-facing subscription lifecycle.
type SubscriptionHandler struct {
	subscribeUC       *usecases.SubscribeCustomerUseCase
	unsubscribeUC     *usecases.UnsubscribeCustomerUseCase
	getSubscriptionUC *usecases.GetSubscriptionUseCase
	startReadingUC    *usecases.StartReadingBookUseCase
	logger            logger.Interface
}

func NewSubscriptionHandler(
	subscribeUC *usecases.SubscribeCustomerUseCase,
	unsubscribeUC *usecases.UnsubscribeCustomerUseCase,
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	startReadingUC *usecases.StartReadingBookUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscribeUC:       subscribeUC,
		unsubscribeUC:     unsubscribeUC,
		getSubscriptionUC: getSubscriptionUC,
		startReadingUC:    startReadingUC,
		logger:            logger,
	}
}

type SubscribeRequest struct {
	PlanID uint `json:"planId" binding:"required"`
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for subscribe", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid subscription payload."))
		return
	}

	sub, err := h.subscribeUC.Execute(c.Request.Context(), middleware.UserID(c), req.PlanID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, sub, "Subscribed")
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	if err := h.unsubscribeUC.Execute(c.Request.Context(), middleware.UserID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *SubscriptionHandler) GetMine(c *gin.Context) {
	sub, err := h.getSubscriptionUC.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, sub)
}

func (h *SubscriptionHandler) StartReading(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	record, err := h.startReadingUC.Execute(c.Request.Context(), middleware.UserID(c), bookID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, record, "Enjoy your book")
}
