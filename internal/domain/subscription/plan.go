// Package subscription holds the subscription plan catalog, customer
// enrollments and the started-reading quota records.
package subscription

import (
	"math"
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// Plan is a named subscription tier. Editing a plan never changes the
// terms of existing subscribers; those are copied at subscribe time.
type Plan struct {
	id            uint
	name          string
	booksPerMonth int
	pricePerMonth float64
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPlan creates a new subscription plan. Fractional booksPerMonth input
// from the API layer is rounded before it reaches here.
func NewPlan(name string, booksPerMonth int, pricePerMonth float64) (*Plan, error) {
	if err := validatePlanTerms(name, booksPerMonth, pricePerMonth); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Plan{
		name:          name,
		booksPerMonth: booksPerMonth,
		pricePerMonth: pricePerMonth,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(id uint, name string, booksPerMonth int, pricePerMonth float64, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:            id,
		name:          name,
		booksPerMonth: booksPerMonth,
		pricePerMonth: pricePerMonth,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func validatePlanTerms(name string, booksPerMonth int, pricePerMonth float64) error {
	if name == "" {
		return apperrors.NewValidationError("plan name is required")
	}
	if booksPerMonth <= 0 {
		return apperrors.NewValidationError("books per month must be a positive number")
	}
	if pricePerMonth <= 0 || math.IsNaN(pricePerMonth) || math.IsInf(pricePerMonth, 0) {
		return apperrors.NewValidationError("price per month must be a positive number")
	}
	return nil
}

func (p *Plan) ID() uint               { return p.id }
func (p *Plan) Name() string           { return p.name }
func (p *Plan) BooksPerMonth() int     { return p.booksPerMonth }
func (p *Plan) PricePerMonth() float64 { return p.pricePerMonth }
func (p *Plan) CreatedAt() time.Time   { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time   { return p.updatedAt }

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) { p.id = id }

// Update applies new terms to the plan.
func (p *Plan) Update(name string, booksPerMonth int, pricePerMonth float64) error {
	if err := validatePlanTerms(name, booksPerMonth, pricePerMonth); err != nil {
		return err
	}
	p.name = name
	p.booksPerMonth = booksPerMonth
	p.pricePerMonth = pricePerMonth
	p.updatedAt = time.Now().UTC()
	return nil
}
