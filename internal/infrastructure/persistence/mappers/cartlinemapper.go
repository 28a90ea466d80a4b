package mappers

import (
	"bookworm/internal/domain/cart"
	"bookworm/internal/infrastructure/persistence/models"
)

// CartLineToModel converts a cart line entity to its persistence model.
func CartLineToModel(entity *cart.Line) *models.CartLineModel {
	if entity == nil {
		return nil
	}
	return &models.CartLineModel{
		ID:      entity.ID(),
		UserID:  entity.UserID(),
		BookID:  entity.BookID(),
		AddedAt: entity.AddedAt(),
	}
}

// CartLineToEntity converts a persistence model to a cart line entity.
func CartLineToEntity(model *models.CartLineModel) *cart.Line {
	if model == nil {
		return nil
	}
	return cart.ReconstructLine(model.ID, model.UserID, model.BookID, model.AddedAt)
}
