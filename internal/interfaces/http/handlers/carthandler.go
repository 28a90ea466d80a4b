package handlers

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/application/cart/usecases"
	"bookworm/internal/interfaces/http/middleware"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// CartHandler serves the authenticated user's shopping cart.
type CartHandler struct {
	getItemsUC   *usecases.GetItemsUseCase
	addItemUC    *usecases.AddItemUseCase
	removeItemUC *usecases.RemoveItemUseCase
	clearCartUC  *usecases.ClearCartUseCase
	checkoutUC   *usecases.CheckoutUseCase
	logger       logger.Interface
}

func NewCartHandler(
	getItemsUC *usecases.GetItemsUseCase,
	addItemUC *usecases.AddItemUseCase,
	removeItemUC *usecases.RemoveItemUseCase,
	clearCartUC *usecases.ClearCartUseCase,
	checkoutUC *usecases.CheckoutUseCase,
	logger logger.Interface,
) *CartHandler {
	return &CartHandler{
		getItemsUC:   getItemsUC,
		addItemUC:    addItemUC,
		removeItemUC: removeItemUC,
		clearCartUC:  clearCartUC,
		checkoutUC:   checkoutUC,
		logger:       logger,
	}
}

type AddCartItemRequest struct {
	BookID uint `json:"bookId" binding:"required"`
}

func (h *CartHandler) GetItems(c *gin.Context) {
	content, err := h.getItemsUC.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, content)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add cart item", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid cart item payload."))
		return
	}

	line, err := h.addItemUC.Execute(c.Request.Context(), middleware.UserID(c), req.BookID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, line, "Book added to cart")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	lineID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeItemUC.Execute(c.Request.Context(), middleware.UserID(c), lineID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.clearCartUC.Execute(c.Request.Context(), middleware.UserID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CheckoutCommand{
		UserID:             middleware.UserID(c),
		SynchronousPayment: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"purchaseId": result.ID(), "total": result.Total()}, "Checkout completed")
}
