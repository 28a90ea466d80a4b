package usecases

import (
	"time"

	"bookworm/internal/domain/catalog"
)

// BookDTO is the API representation of a catalog book.
type BookDTO struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CoverImage string  `json:"coverImage,omitempty"`
	Available  bool    `json:"available"`
	ISBN       string  `json:"isbn,omitempty"`
	Pages      int     `json:"pages,omitempty"`
	Summary    string  `json:"summary,omitempty"`
	AuthorID   uint    `json:"authorId"`
	CategoryID uint    `json:"categoryId,omitempty"`
}

func toBookDTO(b *catalog.Book) BookDTO {
	return BookDTO{
		ID:         b.ID(),
		Title:      b.Title(),
		Price:      b.Price(),
		CoverImage: b.CoverImage(),
		Available:  b.Available(),
		ISBN:       b.ISBN(),
		Pages:      b.Pages(),
		Summary:    b.Summary(),
		AuthorID:   b.AuthorID(),
		CategoryID: b.CategoryID(),
	}
}

// AuthorDTO is the API representation of an author.
type AuthorDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	BornAt    *time.Time `json:"bornAt,omitempty"`
	DiedAt    *time.Time `json:"diedAt,omitempty"`
	Biography string     `json:"biography,omitempty"`
}

func toAuthorDTO(a *catalog.Author) AuthorDTO {
	return AuthorDTO{
		ID:        a.ID(),
		Name:      a.Name(),
		BornAt:    a.BornAt(),
		DiedAt:    a.DiedAt(),
		Biography: a.Biography(),
	}
}

// CategoryDTO is the API representation of a category.
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toCategoryDTO(c *catalog.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID(), Name: c.Name()}
}
