package usecases

import (
	"context"
	"fmt"
	"time"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// AuthorCommand carries author fields for create and update.
type AuthorCommand struct {
	Name      string
	BornAt    *time.Time
	DiedAt    *time.Time
	Biography string
}

// AuthorUseCases groups the author CRUD operations; they share a single
// repository and have no cross-cutting dependencies worth splitting over.
type AuthorUseCases struct {
	authorRepo catalog.AuthorRepository
	logger     logger.Interface
}

func NewAuthorUseCases(authorRepo catalog.AuthorRepository, logger logger.Interface) *AuthorUseCases {
	return &AuthorUseCases{authorRepo: authorRepo, logger: logger}
}

func (uc *AuthorUseCases) Create(ctx context.Context, cmd AuthorCommand) (*AuthorDTO, error) {
	author, err := catalog.NewAuthor(cmd.Name, cmd.BornAt, cmd.DiedAt, cmd.Biography)
	if err != nil {
		return nil, err
	}

	if err := uc.authorRepo.Create(ctx, author); err != nil {
		uc.logger.Errorw("failed to create author", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	uc.logger.Infow("author created", "author_id", author.ID(), "name", author.Name())

	dto := toAuthorDTO(author)
	return &dto, nil
}

func (uc *AuthorUseCases) Get(ctx context.Context, authorID uint) (*AuthorDTO, error) {
	author, err := uc.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Author with ID %d was not found.", authorID))
	}

	dto := toAuthorDTO(author)
	return &dto, nil
}

func (uc *AuthorUseCases) List(ctx context.Context, pagination utils.Pagination) ([]AuthorDTO, int64, error) {
	pagination = utils.ValidatePagination(pagination.Page, pagination.PageSize)

	authors, total, err := uc.authorRepo.List(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list authors", "error", err)
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}

	dtos := make([]AuthorDTO, 0, len(authors))
	for _, a := range authors {
		dtos = append(dtos, toAuthorDTO(a))
	}
	return dtos, total, nil
}

func (uc *AuthorUseCases) Update(ctx context.Context, authorID uint, cmd AuthorCommand) (*AuthorDTO, error) {
	author, err := uc.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Author with ID %d was not found.", authorID))
	}

	if err := author.Update(cmd.Name, cmd.BornAt, cmd.DiedAt, cmd.Biography); err != nil {
		return nil, err
	}

	if err := uc.authorRepo.Update(ctx, author); err != nil {
		uc.logger.Errorw("failed to update author", "error", err, "author_id", authorID)
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	dto := toAuthorDTO(author)
	return &dto, nil
}

func (uc *AuthorUseCases) Delete(ctx context.Context, authorID uint) error {
	author, err := uc.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return err
	}
	if author == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("Author with ID %d was not found.", authorID))
	}

	if err := uc.authorRepo.Delete(ctx, authorID); err != nil {
		// books still reference the author
		if apperrors.IsValidationError(err) || apperrors.IsConflictError(err) {
			return apperrors.NewValidationError("Cannot delete author while books reference them.")
		}
		uc.logger.Errorw("failed to delete author", "error", err, "author_id", authorID)
		return fmt.Errorf("failed to delete author: %w", err)
	}

	uc.logger.Infow("author deleted", "author_id", authorID, "name", author.Name())
	return nil
}
