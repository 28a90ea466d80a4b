package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// ListBooksQuery filters and pages the book catalog.
type ListBooksQuery struct {
	AuthorID   *uint
	CategoryID *uint
	Available  *bool
	Pagination utils.Pagination
}

// ListBooksUseCase pages through the book catalog.
type ListBooksUseCase struct {
	bookRepo catalog.BookRepository
	logger   logger.Interface
}

func NewListBooksUseCase(bookRepo catalog.BookRepository, logger logger.Interface) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo, logger: logger}
}

func (uc *ListBooksUseCase) Execute(ctx context.Context, query ListBooksQuery) ([]BookDTO, int64, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	books, total, err := uc.bookRepo.List(ctx, catalog.BookFilter{
		AuthorID:   query.AuthorID,
		CategoryID: query.CategoryID,
		Available:  query.Available,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list books", "error", err)
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	dtos := make([]BookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, toBookDTO(b))
	}
	return dtos, total, nil
}
