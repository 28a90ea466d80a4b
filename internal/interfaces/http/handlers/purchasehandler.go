package handlers

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/application/purchase/usecases"
	"bookworm/internal/interfaces/http/middleware"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// PurchaseHandler serves the purchase ledger. Customers only see their
// own purchases; admins see everyone's.
type PurchaseHandler struct {
	listPurchasesUC *usecases.ListPurchasesUseCase
	getPurchaseUC   *usecases.GetPurchaseUseCase
	logger          logger.Interface
}

func NewPurchaseHandler(
	listPurchasesUC *usecases.ListPurchasesUseCase,
	getPurchaseUC *usecases.GetPurchaseUseCase,
	logger logger.Interface,
) *PurchaseHandler {
	return &PurchaseHandler{
		listPurchasesUC: listPurchasesUC,
		getPurchaseUC:   getPurchaseUC,
		logger:          logger,
	}
}

// scopedUserID returns nil for admins, which lifts the owner filter.
func scopedUserID(c *gin.Context) *uint {
	if middleware.IsAdmin(c) {
		return nil
	}
	userID := middleware.UserID(c)
	return &userID
}

func (h *PurchaseHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	purchases, total, err := h.listPurchasesUC.Execute(c.Request.Context(), usecases.ListPurchasesQuery{
		UserID:     scopedUserID(c),
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, purchases, total, pagination.Page, pagination.PageSize)
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	purchaseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.getPurchaseUC.Execute(c.Request.Context(), usecases.GetPurchaseQuery{
		PurchaseID: purchaseID,
		UserID:     scopedUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, p)
}
