package mappers

import (
	"bookworm/internal/domain/subscription"
	"bookworm/internal/infrastructure/persistence/models"
)

// PlanToModel converts a plan entity to its persistence model.
func PlanToModel(entity *subscription.Plan) *models.SubscriptionPlanModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionPlanModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		BooksPerMonth: entity.BooksPerMonth(),
		PricePerMonth: entity.PricePerMonth(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

// PlanToEntity converts a persistence model to a plan entity.
func PlanToEntity(model *models.SubscriptionPlanModel) *subscription.Plan {
	if model == nil {
		return nil
	}
	return subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.BooksPerMonth,
		model.PricePerMonth,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// UserSubscriptionToModel converts an enrollment entity to its
// persistence model.
func UserSubscriptionToModel(entity *subscription.UserSubscription) *models.UserSubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.UserSubscriptionModel{
		ID:                 entity.ID(),
		UserID:             entity.UserID(),
		SubscriptionPlanID: entity.PlanID(),
		Name:               entity.PlanName(),
		BooksPerMonth:      entity.BooksPerMonth(),
		PricePerMonth:      entity.PricePerMonth(),
		SubscribedAt:       entity.SubscribedAt(),
		ExpiresAt:          entity.ExpiresAt(),
		LastRenewedAt:      entity.LastRenewedAt(),
	}
}

// UserSubscriptionToEntity converts a persistence model to an enrollment
// entity.
func UserSubscriptionToEntity(model *models.UserSubscriptionModel) (*subscription.UserSubscription, error) {
	if model == nil {
		return nil, nil
	}
	return subscription.ReconstructUserSubscription(
		model.ID,
		model.UserID,
		model.SubscriptionPlanID,
		model.Name,
		model.BooksPerMonth,
		model.PricePerMonth,
		model.SubscribedAt,
		model.ExpiresAt,
		model.LastRenewedAt,
	)
}

// StartedReadingBookToModel converts a started-reading record to its
// persistence model.
func StartedReadingBookToModel(entity *subscription.StartedReadingBook) *models.StartedReadingBookModel {
	if entity == nil {
		return nil
	}
	return &models.StartedReadingBookModel{
		ID:                 entity.ID(),
		UserID:             entity.UserID(),
		BookID:             entity.BookID(),
		UserSubscriptionID: entity.UserSubscriptionID(),
		StartedAt:          entity.StartedAt(),
	}
}

// StartedReadingBookToEntity converts a persistence model to a
// started-reading record.
func StartedReadingBookToEntity(model *models.StartedReadingBookModel) *subscription.StartedReadingBook {
	if model == nil {
		return nil
	}
	return subscription.ReconstructStartedReadingBook(
		model.ID,
		model.UserID,
		model.BookID,
		model.UserSubscriptionID,
		model.StartedAt,
	)
}
