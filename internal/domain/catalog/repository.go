package catalog

import "context"

// BookFilter narrows book listings.
type BookFilter struct {
	AuthorID   *uint
	CategoryID *uint
	Available  *bool
	Page       int
	PageSize   int
}

// BookRepository persists books.
type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	GetByID(ctx context.Context, id uint) (*Book, error)
	Update(ctx context.Context, book *Book) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter BookFilter) ([]*Book, int64, error)
}

// AuthorRepository persists authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *Author) error
	GetByID(ctx context.Context, id uint) (*Author, error)
	Update(ctx context.Context, author *Author) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, pageSize int) ([]*Author, int64, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Category, error)
}
