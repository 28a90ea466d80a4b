package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bookworm/internal/application/catalog/usecases"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// BookHandler serves the book catalog.
type BookHandler struct {
	createBookUC *usecases.CreateBookUseCase
	updateBookUC *usecases.UpdateBookUseCase
	listBooksUC  *usecases.ListBooksUseCase
	getBookUC    *usecases.GetBookUseCase
	deleteBookUC *usecases.DeleteBookUseCase
	logger       logger.Interface
}

func NewBookHandler(
	createBookUC *usecases.CreateBookUseCase,
	updateBookUC *usecases.UpdateBookUseCase,
	listBooksUC *usecases.ListBooksUseCase,
	getBookUC *usecases.GetBookUseCase,
	deleteBookUC *usecases.DeleteBookUseCase,
	logger logger.Interface,
) *BookHandler {
	return &BookHandler{
		createBookUC: createBookUC,
		updateBookUC: updateBookUC,
		listBooksUC:  listBooksUC,
		getBookUC:    getBookUC,
		deleteBookUC: deleteBookUC,
		logger:       logger,
	}
}

type CreateBookRequest struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	CoverImage string  `json:"coverImage"`
	Available  bool    `json:"available"`
	ISBN       string  `json:"isbn" binding:"required"`
	Pages      int     `json:"pages" binding:"required,gt=0"`
	Summary    string  `json:"summary"`
	AuthorID   uint    `json:"authorId" binding:"required"`
	CategoryID uint    `json:"categoryId" binding:"required"`
}

type UpdateBookRequest struct {
	Title      *string  `json:"title"`
	Price      *float64 `json:"price"`
	CoverImage *string  `json:"coverImage"`
	Available  *bool    `json:"available"`
	ISBN       *string  `json:"isbn"`
	Pages      *int     `json:"pages"`
	Summary    *string  `json:"summary"`
	AuthorID   *uint    `json:"authorId"`
	CategoryID *uint    `json:"categoryId"`
}

func (h *BookHandler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create book", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid book payload."))
		return
	}

	book, err := h.createBookUC.Execute(c.Request.Context(), usecases.CreateBookCommand{
		Title:      req.Title,
		Price:      req.Price,
		CoverImage: req.CoverImage,
		Available:  req.Available,
		ISBN:       req.ISBN,
		Pages:      req.Pages,
		Summary:    req.Summary,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, book, "Book created")
}

func (h *BookHandler) Update(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update book", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid book payload."))
		return
	}

	book, err := h.updateBookUC.Execute(c.Request.Context(), usecases.UpdateBookCommand{
		BookID:     bookID,
		Title:      req.Title,
		Price:      req.Price,
		CoverImage: req.CoverImage,
		Available:  req.Available,
		ISBN:       req.ISBN,
		Pages:      req.Pages,
		Summary:    req.Summary,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, book)
}

func (h *BookHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListBooksQuery{Pagination: pagination}
	if raw := c.Query("authorId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			authorID := uint(id)
			query.AuthorID = &authorID
		}
	}
	if raw := c.Query("categoryId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			query.CategoryID = &categoryID
		}
	}
	if raw := c.Query("available"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			query.Available = &available
		}
	}

	books, total, err := h.listBooksUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, books, total, pagination.Page, pagination.PageSize)
}

func (h *BookHandler) Get(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	book, err := h.getBookUC.Execute(c.Request.Context(), bookID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteBookUC.Execute(c.Request.Context(), bookID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
