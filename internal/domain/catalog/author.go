package catalog

import (
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// Author represents a book author in the catalog.
type Author struct {
	id        uint
	name      string
	bornAt    *time.Time
	diedAt    *time.Time
	biography string
	createdAt time.Time
	updatedAt time.Time
}

// NewAuthor creates a new author.
func NewAuthor(name string, bornAt, diedAt *time.Time, biography string) (*Author, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("author name is required")
	}
	if bornAt != nil && diedAt != nil && diedAt.Before(*bornAt) {
		return nil, apperrors.NewValidationError("author death date cannot precede birth date")
	}

	now := time.Now().UTC()
	return &Author{
		name:      name,
		bornAt:    bornAt,
		diedAt:    diedAt,
		biography: biography,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAuthor rebuilds an author from persistence.
func ReconstructAuthor(id uint, name string, bornAt, diedAt *time.Time, biography string, createdAt, updatedAt time.Time) *Author {
	return &Author{
		id:        id,
		name:      name,
		bornAt:    bornAt,
		diedAt:    diedAt,
		biography: biography,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Author) ID() uint             { return a.id }
func (a *Author) Name() string         { return a.name }
func (a *Author) BornAt() *time.Time   { return a.bornAt }
func (a *Author) DiedAt() *time.Time   { return a.diedAt }
func (a *Author) Biography() string    { return a.biography }
func (a *Author) CreatedAt() time.Time { return a.createdAt }
func (a *Author) UpdatedAt() time.Time { return a.updatedAt }

// SetID sets the author ID (only for persistence layer use)
func (a *Author) SetID(id uint) { a.id = id }

// Update applies editable fields.
func (a *Author) Update(name string, bornAt, diedAt *time.Time, biography string) error {
	if name == "" {
		return apperrors.NewValidationError("author name is required")
	}
	if bornAt != nil && diedAt != nil && diedAt.Before(*bornAt) {
		return apperrors.NewValidationError("author death date cannot precede birth date")
	}
	a.name = name
	a.bornAt = bornAt
	a.diedAt = diedAt
	a.biography = biography
	a.updatedAt = time.Now().UTC()
	return nil
}
