package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CategoryUseCases groups the category CRUD operations.
type CategoryUseCases struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewCategoryUseCases(categoryRepo catalog.CategoryRepository, logger logger.Interface) *CategoryUseCases {
	return &CategoryUseCases{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CategoryUseCases) Create(ctx context.Context, name string) (*CategoryDTO, error) {
	category, err := catalog.NewCategory(name)
	if err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("Category with that name already exists.")
		}
		uc.logger.Errorw("failed to create category", "error", err, "name", name)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "name", category.Name())

	dto := toCategoryDTO(category)
	return &dto, nil
}

func (uc *CategoryUseCases) List(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	return dtos, nil
}

func (uc *CategoryUseCases) Rename(ctx context.Context, categoryID uint, name string) (*CategoryDTO, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Category with ID %d was not found.", categoryID))
	}

	if err := category.Rename(name); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("Category with that name already exists.")
		}
		uc.logger.Errorw("failed to rename category", "error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	dto := toCategoryDTO(category)
	return &dto, nil
}

func (uc *CategoryUseCases) Delete(ctx context.Context, categoryID uint) error {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("Category with ID %d was not found.", categoryID))
	}

	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", categoryID)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.logger.Infow("category deleted", "category_id", categoryID, "name", category.Name())
	return nil
}
