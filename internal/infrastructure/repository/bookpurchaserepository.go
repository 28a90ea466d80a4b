package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/domain/purchase"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type BookPurchaseRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBookPurchaseRepository(gdb *gorm.DB, logger logger.Interface) purchase.BookPurchaseRepository {
	return &BookPurchaseRepositoryImpl{db: gdb, logger: logger}
}

func (r *BookPurchaseRepositoryImpl) CreateBatch(ctx context.Context, links []*purchase.BookPurchase) error {
	if len(links) == 0 {
		return nil
	}

	modelList := make([]*models.BookPurchaseModel, 0, len(links))
	for _, link := range links {
		model, err := mappers.BookPurchaseToModel(link)
		if err != nil {
			return err
		}
		modelList = append(modelList, model)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&modelList).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("book ownership already recorded")
		}
		r.logger.Errorw("failed to create book purchases", "error", err, "count", len(links))
		return fmt.Errorf("failed to create book purchases: %w", err)
	}

	for i, model := range modelList {
		links[i].SetID(model.ID)
	}
	return nil
}

func (r *BookPurchaseRepositoryImpl) ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.BookPurchaseModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check book ownership", "error", err, "user_id", userID, "book_id", bookID)
		return false, fmt.Errorf("failed to check book ownership: %w", err)
	}
	return count > 0, nil
}

func (r *BookPurchaseRepositoryImpl) CountByPurchase(ctx context.Context, purchaseID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.BookPurchaseModel{}).
		Where("purchase_id = ?", purchaseID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count book purchases", "error", err, "purchase_id", purchaseID)
		return 0, fmt.Errorf("failed to count book purchases: %w", err)
	}
	return count, nil
}
