package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/infrastructure/persistence/models"
)

// PurchaseToModel converts a purchase entity to its persistence model,
// serializing the frozen cart snapshot as JSON.
func PurchaseToModel(entity *purchase.Purchase) (*models.PurchaseModel, error) {
	if entity == nil {
		return nil, nil
	}

	snapshotJSON, err := json.Marshal(entity.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase snapshot: %w", err)
	}

	return &models.PurchaseModel{
		ID:            entity.ID(),
		UserID:        entity.UserID(),
		PaymentMethod: entity.PaymentMethod(),
		PlacedAt:      entity.PlacedAt(),
		PaidAt:        entity.PaidAt(),
		IsPaid:        entity.IsPaid(),
		Snapshot:      datatypes.JSON(snapshotJSON),
	}, nil
}

// PurchaseToEntity converts a persistence model to a purchase entity.
func PurchaseToEntity(model *models.PurchaseModel) (*purchase.Purchase, error) {
	if model == nil {
		return nil, nil
	}

	var snapshot []catalog.BookLineView
	if err := json.Unmarshal(model.Snapshot, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal purchase snapshot: %w", err)
	}

	return purchase.ReconstructPurchase(
		model.ID,
		model.UserID,
		model.PaymentMethod,
		model.PlacedAt,
		model.PaidAt,
		model.IsPaid,
		snapshot,
	), nil
}

// BookPurchaseToModel converts an ownership link entity to its
// persistence model.
func BookPurchaseToModel(entity *purchase.BookPurchase) (*models.BookPurchaseModel, error) {
	if entity == nil {
		return nil, nil
	}

	snapshotJSON, err := json.Marshal(entity.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book purchase snapshot: %w", err)
	}

	return &models.BookPurchaseModel{
		ID:         entity.ID(),
		PurchaseID: entity.PurchaseID(),
		BookID:     entity.BookID(),
		UserID:     entity.UserID(),
		Snapshot:   datatypes.JSON(snapshotJSON),
	}, nil
}

// BookPurchaseToEntity converts a persistence model to an ownership link
// entity.
func BookPurchaseToEntity(model *models.BookPurchaseModel) (*purchase.BookPurchase, error) {
	if model == nil {
		return nil, nil
	}

	var snapshot catalog.BookLineView
	if err := json.Unmarshal(model.Snapshot, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal book purchase snapshot: %w", err)
	}

	return purchase.ReconstructBookPurchase(
		model.ID,
		model.PurchaseID,
		model.BookID,
		model.UserID,
		snapshot,
	), nil
}
