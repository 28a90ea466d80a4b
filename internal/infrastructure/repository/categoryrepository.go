package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCategoryRepository(gdb *gorm.DB, logger logger.Interface) catalog.CategoryRepository {
	return &CategoryRepositoryImpl{db: gdb, logger: logger}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, entity *catalog.Category) error {
	model := mappers.CategoryToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("category with that name already exists")
		}
		r.logger.Errorw("failed to create category", "error", err, "name", entity.Name())
		return fmt.Errorf("failed to create category: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get category by ID", "error", err, "category_id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToEntity(&model), nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, entity *catalog.Category) error {
	model := mappers.CategoryToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.CategoryModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("category with that name already exists")
		}
		r.logger.Errorw("failed to update category", "error", result.Error, "category_id", entity.ID())
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete category", "error", result.Error, "category_id", id)
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*catalog.Category, error) {
	var modelList []*models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	entities := make([]*catalog.Category, 0, len(modelList))
	for _, m := range modelList {
		entities = append(entities, mappers.CategoryToEntity(m))
	}
	return entities, nil
}
