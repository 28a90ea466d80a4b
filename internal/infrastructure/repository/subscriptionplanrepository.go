package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type SubscriptionPlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionPlanRepository(gdb *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &SubscriptionPlanRepositoryImpl{db: gdb, logger: logger}
}

func (r *SubscriptionPlanRepositoryImpl) Create(ctx context.Context, plan *subscription.Plan) error {
	model := mappers.PlanToModel(plan)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("subscription plan with that name already exists")
		}
		r.logger.Errorw("failed to create subscription plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}

	plan.SetID(model.ID)
	return nil
}

func (r *SubscriptionPlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.SubscriptionPlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}
	return mappers.PlanToEntity(&model), nil
}

func (r *SubscriptionPlanRepositoryImpl) Update(ctx context.Context, plan *subscription.Plan) error {
	model := mappers.PlanToModel(plan)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionPlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"books_per_month": model.BooksPerMonth,
			"price_per_month": model.PricePerMonth,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("subscription plan with that name already exists")
		}
		r.logger.Errorw("failed to update subscription plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update subscription plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription plan not found")
	}
	return nil
}

func (r *SubscriptionPlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SubscriptionPlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete subscription plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription plan not found")
	}
	return nil
}

func (r *SubscriptionPlanRepositoryImpl) List(ctx context.Context) ([]*subscription.Plan, error) {
	var modelList []*models.SubscriptionPlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("price_per_month ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}

	plans := make([]*subscription.Plan, 0, len(modelList))
	for _, m := range modelList {
		plans = append(plans, mappers.PlanToEntity(m))
	}
	return plans, nil
}
