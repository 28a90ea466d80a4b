package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// UpdateBookCommand carries a partial book edit. Nil fields are left
// unchanged.
type UpdateBookCommand struct {
	BookID     uint
	Title      *string
	Price      *float64
	CoverImage *string
	Available  *bool
	ISBN       *string
	Pages      *int
	Summary    *string
	AuthorID   *uint
	CategoryID *uint
}

// UpdateBookUseCase edits a catalog book. Purchase snapshots are frozen
// copies, so edits never change what a past buyer sees.
type UpdateBookUseCase struct {
	bookRepo catalog.BookRepository
	logger   logger.Interface
}

func NewUpdateBookUseCase(bookRepo catalog.BookRepository, logger logger.Interface) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookRepo: bookRepo, logger: logger}
}

func (uc *UpdateBookUseCase) Execute(ctx context.Context, cmd UpdateBookCommand) (*BookDTO, error) {
	book, err := uc.bookRepo.GetByID(ctx, cmd.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Book with ID %d was not found.", cmd.BookID))
	}

	attrs := catalog.BookAttributes{
		Title:      book.Title(),
		Price:      book.Price(),
		CoverImage: book.CoverImage(),
		Available:  book.Available(),
		ISBN:       book.ISBN(),
		Pages:      book.Pages(),
		Summary:    book.Summary(),
		AuthorID:   book.AuthorID(),
		CategoryID: book.CategoryID(),
	}
	if cmd.Title != nil {
		attrs.Title = *cmd.Title
	}
	if cmd.Price != nil {
		attrs.Price = *cmd.Price
	}
	if cmd.CoverImage != nil {
		attrs.CoverImage = *cmd.CoverImage
	}
	if cmd.Available != nil {
		attrs.Available = *cmd.Available
	}
	if cmd.ISBN != nil {
		attrs.ISBN = *cmd.ISBN
	}
	if cmd.Pages != nil {
		attrs.Pages = *cmd.Pages
	}
	if cmd.Summary != nil {
		attrs.Summary = *cmd.Summary
	}
	if cmd.AuthorID != nil {
		attrs.AuthorID = *cmd.AuthorID
	}
	if cmd.CategoryID != nil {
		attrs.CategoryID = *cmd.CategoryID
	}

	if err := book.Update(attrs); err != nil {
		return nil, err
	}

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		uc.logger.Errorw("failed to update book", "error", err, "book_id", cmd.BookID)
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	uc.logger.Infow("book updated", "book_id", book.ID(), "title", book.Title())

	dto := toBookDTO(book)
	return &dto, nil
}
