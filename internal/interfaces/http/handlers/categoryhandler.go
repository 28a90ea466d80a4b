package handlers

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/application/catalog/usecases"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// CategoryHandler serves category CRUD.
type CategoryHandler struct {
	categoryUC *usecases.CategoryUseCases
	logger     logger.Interface
}

func NewCategoryHandler(categoryUC *usecases.CategoryUseCases, logger logger.Interface) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, logger: logger}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid category payload."))
		return
	}

	category, err := h.categoryUC.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, category, "Category created")
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, categories)
}

func (h *CategoryHandler) Rename(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rename category", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid category payload."))
		return
	}

	category, err := h.categoryUC.Rename(c.Request.Context(), categoryID, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.categoryUC.Delete(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
