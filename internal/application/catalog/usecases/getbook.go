package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// GetBookUseCase loads one book by ID.
type GetBookUseCase struct {
	bookRepo catalog.BookRepository
	logger   logger.Interface
}

func NewGetBookUseCase(bookRepo catalog.BookRepository, logger logger.Interface) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo, logger: logger}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, bookID uint) (*BookDTO, error) {
	book, err := uc.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Book with ID %d was not found.", bookID))
	}

	dto := toBookDTO(book)
	return &dto, nil
}
