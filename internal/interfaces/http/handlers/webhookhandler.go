package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"bookworm/internal/application/payment/usecases"
	"bookworm/internal/shared/constants"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// WebhookHandler receives payment gateway deliveries. Validation
// failures return 4xx so the gateway stops retrying; transient failures
// return 5xx so it retries the delivery.
type WebhookHandler struct {
	gateway usecases.Gateway
	eventUC *usecases.HandleWebhookEventUseCase
	logger  logger.Interface
}

func NewWebhookHandler(gateway usecases.Gateway, eventUC *usecases.HandleWebhookEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{gateway: gateway, eventUC: eventUC, logger: logger}
}

func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Warnw("failed to read webhook payload", "error", err)
		utils.ErrorResponse(c, 400, "Invalid webhook payload.")
		return
	}

	event, err := h.gateway.ParseWebhookEvent(payload, c.GetHeader(constants.HeaderStripeSignature))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.eventUC.Execute(c.Request.Context(), *event); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		h.logger.Errorw("webhook processing failed", "error", err, "event_type", event.Type)
		utils.ErrorResponse(c, 500, "Webhook processing failed.")
		return
	}
	utils.OKResponse(c, gin.H{"received": true})
}
