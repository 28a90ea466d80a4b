package catalog

import (
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// Book represents a purchasable title in the catalog.
type Book struct {
	id         uint
	title      string
	price      float64
	coverImage string
	available  bool
	isbn       string
	pages      int
	summary    string
	authorID   uint
	categoryID uint
	createdAt  time.Time
	updatedAt  time.Time
}

// BookAttributes carries the editable fields of a book.
type BookAttributes struct {
	Title      string
	Price      float64
	CoverImage string
	Available  bool
	ISBN       string
	Pages      int
	Summary    string
	AuthorID   uint
	CategoryID uint
}

// NewBook creates a new book.
func NewBook(attrs BookAttributes) (*Book, error) {
	if err := validateBookAttributes(attrs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Book{
		title:      attrs.Title,
		price:      attrs.Price,
		coverImage: attrs.CoverImage,
		available:  attrs.Available,
		isbn:       attrs.ISBN,
		pages:      attrs.Pages,
		summary:    attrs.Summary,
		authorID:   attrs.AuthorID,
		categoryID: attrs.CategoryID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructBook rebuilds a book from persistence.
func ReconstructBook(id uint, attrs BookAttributes, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:         id,
		title:      attrs.Title,
		price:      attrs.Price,
		coverImage: attrs.CoverImage,
		available:  attrs.Available,
		isbn:       attrs.ISBN,
		pages:      attrs.Pages,
		summary:    attrs.Summary,
		authorID:   attrs.AuthorID,
		categoryID: attrs.CategoryID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func validateBookAttributes(attrs BookAttributes) error {
	if attrs.Title == "" {
		return apperrors.NewValidationError("book title is required")
	}
	if attrs.Price < 0 {
		return apperrors.NewValidationError("book price cannot be negative")
	}
	if attrs.AuthorID == 0 {
		return apperrors.NewValidationError("book author is required")
	}
	return nil
}

func (b *Book) ID() uint             { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Price() float64       { return b.price }
func (b *Book) CoverImage() string   { return b.coverImage }
func (b *Book) Available() bool      { return b.available }
func (b *Book) ISBN() string         { return b.isbn }
func (b *Book) Pages() int           { return b.pages }
func (b *Book) Summary() string      { return b.summary }
func (b *Book) AuthorID() uint       { return b.authorID }
func (b *Book) CategoryID() uint     { return b.categoryID }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

// SetID sets the book ID (only for persistence layer use)
func (b *Book) SetID(id uint) { b.id = id }

// Update applies editable fields.
func (b *Book) Update(attrs BookAttributes) error {
	if err := validateBookAttributes(attrs); err != nil {
		return err
	}
	b.title = attrs.Title
	b.price = attrs.Price
	b.coverImage = attrs.CoverImage
	b.available = attrs.Available
	b.isbn = attrs.ISBN
	b.pages = attrs.Pages
	b.summary = attrs.Summary
	b.authorID = attrs.AuthorID
	b.categoryID = attrs.CategoryID
	b.updatedAt = time.Now().UTC()
	return nil
}
