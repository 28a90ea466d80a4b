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

type AuthorRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuthorRepository(gdb *gorm.DB, logger logger.Interface) catalog.AuthorRepository {
	return &AuthorRepositoryImpl{db: gdb, logger: logger}
}

func (r *AuthorRepositoryImpl) Create(ctx context.Context, entity *catalog.Author) error {
	model := mappers.AuthorToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create author", "error", err, "name", entity.Name())
		return fmt.Errorf("failed to create author: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *AuthorRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Author, error) {
	var model models.AuthorModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get author by ID", "error", err, "author_id", id)
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return mappers.AuthorToEntity(&model), nil
}

func (r *AuthorRepositoryImpl) Update(ctx context.Context, entity *catalog.Author) error {
	model := mappers.AuthorToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.AuthorModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"born_at":    model.BornAt,
			"died_at":    model.DiedAt,
			"biography":  model.Biography,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update author", "error", result.Error, "author_id", entity.ID())
		return fmt.Errorf("failed to update author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("author not found")
	}
	return nil
}

func (r *AuthorRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AuthorModel{}, id)
	if result.Error != nil {
		if apperrors.IsForeignKeyError(result.Error) {
			return apperrors.NewConflictError("author is still referenced by books")
		}
		r.logger.Errorw("failed to delete author", "error", result.Error, "author_id", id)
		return fmt.Errorf("failed to delete author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("author not found")
	}
	return nil
}

func (r *AuthorRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*catalog.Author, int64, error) {
	gdb := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := gdb.Model(&models.AuthorModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count authors", "error", err)
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	var modelList []*models.AuthorModel
	err := gdb.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list authors", "error", err)
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}

	entities := make([]*catalog.Author, 0, len(modelList))
	for _, m := range modelList {
		entities = append(entities, mappers.AuthorToEntity(m))
	}
	return entities, total, nil
}
