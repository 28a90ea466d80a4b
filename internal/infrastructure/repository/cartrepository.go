package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/domain/cart"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type CartRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCartRepository(gdb *gorm.DB, logger logger.Interface) cart.Repository {
	return &CartRepositoryImpl{db: gdb, logger: logger}
}

func (r *CartRepositoryImpl) Create(ctx context.Context, line *cart.Line) error {
	model := mappers.CartLineToModel(line)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("This book is already in your cart.")
		}
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewValidationError("Cart line references a missing user or book.")
		}
		r.logger.Errorw("failed to create cart line", "error", err, "user_id", line.UserID(), "book_id", line.BookID())
		return fmt.Errorf("failed to create cart line: %w", err)
	}

	line.SetID(model.ID)
	return nil
}

func (r *CartRepositoryImpl) GetByID(ctx context.Context, id uint) (*cart.Line, error) {
	var model models.CartLineModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get cart line by ID", "error", err, "line_id", id)
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}
	return mappers.CartLineToEntity(&model), nil
}

func (r *CartRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*cart.Line, error) {
	var modelList []*models.CartLineModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list cart lines", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	lines := make([]*cart.Line, 0, len(modelList))
	for _, m := range modelList {
		lines = append(lines, mappers.CartLineToEntity(m))
	}
	return lines, nil
}

func (r *CartRepositoryImpl) DeleteByIDAndUser(ctx context.Context, id, userID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartLineModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete cart line", "error", result.Error, "line_id", id, "user_id", userID)
		return 0, fmt.Errorf("failed to delete cart line: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CartRepositoryImpl) ClearByUser(ctx context.Context, userID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&models.CartLineModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to clear cart", "error", err, "user_id", userID)
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
