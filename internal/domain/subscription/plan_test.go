package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bookworm/internal/shared/errors"
)

func newTestPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan("Economic", 5, 5.0)
	require.NoError(t, err)
	return plan
}

func TestNewPlan_ValidInput(t *testing.T) {
	plan, err := NewPlan("Economic", 5, 5.0)

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Economic", plan.Name())
	assert.Equal(t, 5, plan.BooksPerMonth())
	assert.Equal(t, 5.0, plan.PricePerMonth())
	assert.False(t, plan.CreatedAt().IsZero())
}

func TestNewPlan_RejectsInvalidTerms(t *testing.T) {
	tests := []struct {
		name          string
		planName      string
		booksPerMonth int
		pricePerMonth float64
	}{
		{"empty name", "", 5, 5.0},
		{"zero quota", "Basic", 0, 5.0},
		{"negative quota", "Basic", -1, 5.0},
		{"zero price", "Basic", 5, 0},
		{"negative price", "Basic", 5, -9.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.planName, tt.booksPerMonth, tt.pricePerMonth)
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestPlan_Update(t *testing.T) {
	plan := newTestPlan(t)

	err := plan.Update("Premium", 12, 14.99)

	require.NoError(t, err)
	assert.Equal(t, "Premium", plan.Name())
	assert.Equal(t, 12, plan.BooksPerMonth())
	assert.Equal(t, 14.99, plan.PricePerMonth())
}

func TestPlan_Update_RejectsInvalidTerms(t *testing.T) {
	plan := newTestPlan(t)

	err := plan.Update("Premium", -3, 14.99)

	require.Error(t, err)
	// original terms untouched
	assert.Equal(t, "Economic", plan.Name())
	assert.Equal(t, 5, plan.BooksPerMonth())
}
