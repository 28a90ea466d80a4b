package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// DeleteBookUseCase removes a book from the catalog. Existing purchase
// snapshots and ownership links keep their frozen copies.
type DeleteBookUseCase struct {
	bookRepo catalog.BookRepository
	logger   logger.Interface
}

func NewDeleteBookUseCase(bookRepo catalog.BookRepository, logger logger.Interface) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo, logger: logger}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, bookID uint) error {
	book, err := uc.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("Book with ID %d was not found.", bookID))
	}

	if err := uc.bookRepo.Delete(ctx, bookID); err != nil {
		uc.logger.Errorw("failed to delete book", "error", err, "book_id", bookID)
		return fmt.Errorf("failed to delete book: %w", err)
	}

	uc.logger.Infow("book deleted", "book_id", bookID, "title", book.Title())
	return nil
}
