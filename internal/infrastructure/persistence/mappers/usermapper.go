// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"bookworm/internal/domain/user"
	"bookworm/internal/infrastructure/persistence/models"
)

// UserToModel converts a user entity to its persistence model.
func UserToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Role:         entity.Role(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// UserToEntity converts a persistence model to a user entity.
func UserToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		model.Role,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
