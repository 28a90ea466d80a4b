package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CatalogReadModelImpl resolves the denormalized book view cart lines and
// purchase snapshots are built from.
type CatalogReadModelImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCatalogReadModel(gdb *gorm.DB, logger logger.Interface) catalog.ReadModel {
	return &CatalogReadModelImpl{db: gdb, logger: logger}
}

func (r *CatalogReadModelImpl) ResolveBookForCartLine(ctx context.Context, bookID uint) (*catalog.BookLineView, error) {
	var model models.BookModel
	err := db.GetTxFromContext(ctx, r.db).Preload("Author").First(&model, bookID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Book with ID %d was not found.", bookID))
		}
		r.logger.Errorw("failed to resolve book line view", "error", err, "book_id", bookID)
		return nil, fmt.Errorf("failed to resolve book line view: %w", err)
	}

	view := &catalog.BookLineView{
		BookID:     model.ID,
		Title:      model.Title,
		Price:      model.Price,
		CoverImage: model.CoverImage,
		Available:  model.Available,
	}
	if model.Author != nil {
		view.Author = catalog.LineAuthor{ID: model.Author.ID, Name: model.Author.Name}
	}
	return view, nil
}
