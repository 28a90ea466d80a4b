package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookworm/internal/application/catalog/usecases"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// AuthorHandler serves author CRUD.
type AuthorHandler struct {
	authorUC *usecases.AuthorUseCases
	logger   logger.Interface
}

func NewAuthorHandler(authorUC *usecases.AuthorUseCases, logger logger.Interface) *AuthorHandler {
	return &AuthorHandler{authorUC: authorUC, logger: logger}
}

type AuthorRequest struct {
	Name      string     `json:"name" binding:"required"`
	BornAt    *time.Time `json:"bornAt"`
	DiedAt    *time.Time `json:"diedAt"`
	Biography string     `json:"biography"`
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create author", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid author payload."))
		return
	}

	author, err := h.authorUC.Create(c.Request.Context(), usecases.AuthorCommand{
		Name:      req.Name,
		BornAt:    req.BornAt,
		DiedAt:    req.DiedAt,
		Biography: req.Biography,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, author, "Author created")
}

func (h *AuthorHandler) Get(c *gin.Context) {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	author, err := h.authorUC.Get(c.Request.Context(), authorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, author)
}

func (h *AuthorHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	authors, total, err := h.authorUC.List(c.Request.Context(), pagination)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, authors, total, pagination.Page, pagination.PageSize)
}

func (h *AuthorHandler) Update(c *gin.Context) {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update author", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid author payload."))
		return
	}

	author, err := h.authorUC.Update(c.Request.Context(), authorID, usecases.AuthorCommand{
		Name:      req.Name,
		BornAt:    req.BornAt,
		DiedAt:    req.DiedAt,
		Biography: req.Biography,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, author)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.authorUC.Delete(c.Request.Context(), authorID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
