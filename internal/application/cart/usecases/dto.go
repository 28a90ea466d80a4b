package usecases

import "bookworm/internal/domain/catalog"

// CartLineDTO is one resolved cart line as presented to the HTTP layer.
type CartLineDTO struct {
	ID         uint               `json:"id"`
	BookID     uint               `json:"bookId"`
	Title      string             `json:"title"`
	Price      float64            `json:"price"`
	CoverImage string             `json:"coverImage"`
	Available  bool               `json:"available"`
	Author     catalog.LineAuthor `json:"author"`
}

// CartContent is the full cart with its computed total.
type CartContent struct {
	Items []CartLineDTO `json:"items"`
	Total float64       `json:"total"`
}

func toCartLineDTO(lineID uint, view *catalog.BookLineView) CartLineDTO {
	return CartLineDTO{
		ID:         lineID,
		BookID:     view.BookID,
		Title:      view.Title,
		Price:      view.Price,
		CoverImage: view.CoverImage,
		Available:  view.Available,
		Author:     view.Author,
	}
}
