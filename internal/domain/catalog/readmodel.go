package catalog

import "context"

// LineAuthor is the author slice of a cart-line view.
type LineAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookLineView is the denormalized book data a cart line or purchase
// snapshot carries. It is resolved at read time and frozen at checkout.
type BookLineView struct {
	BookID     uint       `json:"bookId"`
	Title      string     `json:"title"`
	Price      float64    `json:"price"`
	CoverImage string     `json:"coverImage"`
	Available  bool       `json:"available"`
	Author     LineAuthor `json:"author"`
}

// ReadModel resolves book data needed to build cart-line and purchase
// snapshots. Implementations join books with their authors.
type ReadModel interface {
	ResolveBookForCartLine(ctx context.Context, bookID uint) (*BookLineView, error)
}
