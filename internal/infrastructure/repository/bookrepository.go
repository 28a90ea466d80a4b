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

type BookRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBookRepository(gdb *gorm.DB, logger logger.Interface) catalog.BookRepository {
	return &BookRepositoryImpl{db: gdb, logger: logger}
}

func (r *BookRepositoryImpl) Create(ctx context.Context, entity *catalog.Book) error {
	model := mappers.BookToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("book with that ISBN already exists")
		}
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewValidationError("book references a missing author or category")
		}
		r.logger.Errorw("failed to create book", "error", err, "title", entity.Title())
		return fmt.Errorf("failed to create book: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *BookRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var model models.BookModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get book by ID", "error", err, "book_id", id)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return mappers.BookToEntity(&model), nil
}

func (r *BookRepositoryImpl) Update(ctx context.Context, entity *catalog.Book) error {
	model := mappers.BookToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.BookModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"price":       model.Price,
			"cover_image": model.CoverImage,
			"available":   model.Available,
			"isbn":        model.ISBN,
			"pages":       model.Pages,
			"summary":     model.Summary,
			"author_id":   model.AuthorID,
			"category_id": model.CategoryID,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsForeignKeyError(result.Error) {
			return apperrors.NewValidationError("book references a missing author or category")
		}
		r.logger.Errorw("failed to update book", "error", result.Error, "book_id", entity.ID())
		return fmt.Errorf("failed to update book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("book not found")
	}
	return nil
}

func (r *BookRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.BookModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete book", "error", result.Error, "book_id", id)
		return fmt.Errorf("failed to delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("book not found")
	}
	return nil
}

func (r *BookRepositoryImpl) List(ctx context.Context, filter catalog.BookFilter) ([]*catalog.Book, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.BookModel{})

	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count books", "error", err)
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	var modelList []*models.BookModel
	err := query.Order("title ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list books", "error", err)
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	entities := make([]*catalog.Book, 0, len(modelList))
	for _, m := range modelList {
		entities = append(entities, mappers.BookToEntity(m))
	}
	return entities, total, nil
}
