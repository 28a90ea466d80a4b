package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type UserSubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserSubscriptionRepository(gdb *gorm.DB, logger logger.Interface) subscription.UserSubscriptionRepository {
	return &UserSubscriptionRepositoryImpl{db: gdb, logger: logger}
}

func (r *UserSubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.UserSubscription) error {
	model := mappers.UserSubscriptionToModel(sub)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already has a subscription")
		}
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewValidationError("subscription references a missing user or plan")
		}
		r.logger.Errorw("failed to create subscription", "error", err, "user_id", sub.UserID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	sub.SetID(model.ID)
	return nil
}

func (r *UserSubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*subscription.UserSubscription, error) {
	var model models.UserSubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.UserSubscriptionToEntity(&model)
}

func (r *UserSubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.UserSubscription) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserSubscriptionModel{}).
		Where("id = ?", sub.ID()).
		Updates(map[string]interface{}{
			"expires_at":      sub.ExpiresAt(),
			"last_renewed_at": sub.LastRenewedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription not found")
	}
	return nil
}

func (r *UserSubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.UserSubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "error", result.Error, "subscription_id", id)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription not found")
	}
	return nil
}

func (r *UserSubscriptionRepositoryImpl) FindExpiring(ctx context.Context, now time.Time, window time.Duration) ([]*subscription.UserSubscription, error) {
	var modelList []*models.UserSubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("expires_at >= ? AND expires_at < ?", now, now.Add(window)).
		Order("expires_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to find expiring subscriptions", "error", err)
		return nil, fmt.Errorf("failed to find expiring subscriptions: %w", err)
	}

	subs := make([]*subscription.UserSubscription, 0, len(modelList))
	for _, m := range modelList {
		sub, err := mappers.UserSubscriptionToEntity(m)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *UserSubscriptionRepositoryImpl) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserSubscriptionModel{}).
		Where("subscription_plan_id = ?", planID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count plan subscribers", "error", err, "plan_id", planID)
		return 0, fmt.Errorf("failed to count plan subscribers: %w", err)
	}
	return count, nil
}
