package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/domain/purchase"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	"bookworm/internal/shared/logger"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPurchaseRepository(gdb *gorm.DB, logger logger.Interface) purchase.Repository {
	return &PurchaseRepositoryImpl{db: gdb, logger: logger}
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, entity *purchase.Purchase) error {
	model, err := mappers.PurchaseToModel(entity)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create purchase", "error", err, "user_id", entity.UserID())
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *PurchaseRepositoryImpl) GetByID(ctx context.Context, id uint, userID *uint) (*purchase.Purchase, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("id = ?", id)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var model models.PurchaseModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get purchase by ID", "error", err, "purchase_id", id)
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return mappers.PurchaseToEntity(&model)
}

// Update persists only the payment fields. The snapshot column is frozen
// at creation and deliberately excluded.
func (r *PurchaseRepositoryImpl) Update(ctx context.Context, entity *purchase.Purchase) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"is_paid": entity.IsPaid(),
			"paid_at": entity.PaidAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update purchase", "error", result.Error, "purchase_id", entity.ID())
		return fmt.Errorf("failed to update purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("purchase %d not found for update", entity.ID())
	}
	return nil
}

func (r *PurchaseRepositoryImpl) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count purchases", "error", err)
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	var modelList []*models.PurchaseModel
	err := query.Order("placed_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list purchases", "error", err)
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}

	entities := make([]*purchase.Purchase, 0, len(modelList))
	for _, m := range modelList {
		entity, err := mappers.PurchaseToEntity(m)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}
	return entities, total, nil
}
