package mappers

import (
	"bookworm/internal/domain/catalog"
	"bookworm/internal/infrastructure/persistence/models"
)

// AuthorToModel converts an author entity to its persistence model.
func AuthorToModel(entity *catalog.Author) *models.AuthorModel {
	if entity == nil {
		return nil
	}
	return &models.AuthorModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		BornAt:    entity.BornAt(),
		DiedAt:    entity.DiedAt(),
		Biography: entity.Biography(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// AuthorToEntity converts a persistence model to an author entity.
func AuthorToEntity(model *models.AuthorModel) *catalog.Author {
	if model == nil {
		return nil
	}
	return catalog.ReconstructAuthor(
		model.ID,
		model.Name,
		model.BornAt,
		model.DiedAt,
		model.Biography,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// CategoryToModel converts a category entity to its persistence model.
func CategoryToModel(entity *catalog.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// CategoryToEntity converts a persistence model to a category entity.
func CategoryToEntity(model *models.CategoryModel) *catalog.Category {
	if model == nil {
		return nil
	}
	return catalog.ReconstructCategory(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

// BookToModel converts a book entity to its persistence model.
func BookToModel(entity *catalog.Book) *models.BookModel {
	if entity == nil {
		return nil
	}
	return &models.BookModel{
		ID:         entity.ID(),
		Title:      entity.Title(),
		Price:      entity.Price(),
		CoverImage: entity.CoverImage(),
		Available:  entity.Available(),
		ISBN:       entity.ISBN(),
		Pages:      entity.Pages(),
		Summary:    entity.Summary(),
		AuthorID:   entity.AuthorID(),
		CategoryID: entity.CategoryID(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// BookToEntity converts a persistence model to a book entity.
func BookToEntity(model *models.BookModel) *catalog.Book {
	if model == nil {
		return nil
	}
	return catalog.ReconstructBook(
		model.ID,
		catalog.BookAttributes{
			Title:      model.Title,
			Price:      model.Price,
			CoverImage: model.CoverImage,
			Available:  model.Available,
			ISBN:       model.ISBN,
			Pages:      model.Pages,
			Summary:    model.Summary,
			AuthorID:   model.AuthorID,
			CategoryID: model.CategoryID,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}
