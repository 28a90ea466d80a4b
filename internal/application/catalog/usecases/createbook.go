package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CreateBookCommand carries the fields of a new catalog book.
type CreateBookCommand struct {
	Title      string
	Price      float64
	CoverImage string
	Available  bool
	ISBN       string
	Pages      int
	Summary    string
	AuthorID   uint
	CategoryID uint
}

// CreateBookUseCase adds a book to the catalog.
type CreateBookUseCase struct {
	bookRepo   catalog.BookRepository
	authorRepo catalog.AuthorRepository
	logger     logger.Interface
}

func NewCreateBookUseCase(
	bookRepo catalog.BookRepository,
	authorRepo catalog.AuthorRepository,
	logger logger.Interface,
) *CreateBookUseCase {
	return &CreateBookUseCase{bookRepo: bookRepo, authorRepo: authorRepo, logger: logger}
}

func (uc *CreateBookUseCase) Execute(ctx context.Context, cmd CreateBookCommand) (*BookDTO, error) {
	author, err := uc.authorRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Author with ID %d was not found.", cmd.AuthorID))
	}

	book, err := catalog.NewBook(catalog.BookAttributes{
		Title:      cmd.Title,
		Price:      cmd.Price,
		CoverImage: cmd.CoverImage,
		Available:  cmd.Available,
		ISBN:       cmd.ISBN,
		Pages:      cmd.Pages,
		Summary:    cmd.Summary,
		AuthorID:   cmd.AuthorID,
		CategoryID: cmd.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.bookRepo.Create(ctx, book); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("Book with that ISBN already exists.")
		}
		uc.logger.Errorw("failed to create book", "error", err, "title", cmd.Title)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	uc.logger.Infow("book created", "book_id", book.ID(), "title", book.Title())

	dto := toBookDTO(book)
	return &dto, nil
}
