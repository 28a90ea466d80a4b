package purchase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
)

func sampleSnapshot() []catalog.BookLineView {
	return []catalog.BookLineView{
		{
			BookID:     3,
			Title:      "The Master and Margarita",
			Price:      6.78,
			CoverImage: "https://img.example.com/mm.jpg",
			Available:  true,
			Author:     catalog.LineAuthor{ID: 1, Name: "Mikhail Bulgakov"},
		},
		{
			BookID: 9,
			Title:  "Dead Souls",
			Price:  4.20,
			Author: catalog.LineAuthor{ID: 2, Name: "Nikolai Gogol"},
		},
	}
}

func TestNewPurchase_Pending(t *testing.T) {
	placed := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	p, err := NewPurchase(42, "card", sampleSnapshot(), placed)

	require.NoError(t, err)
	assert.Equal(t, uint(42), p.UserID())
	assert.False(t, p.IsPaid())
	assert.Nil(t, p.PaidAt())
	assert.Equal(t, placed, p.PlacedAt())
	assert.Len(t, p.Snapshot(), 2)
	assert.InDelta(t, 10.98, p.Total(), 0.0001)
}

func TestNewPurchase_EmptySnapshot(t *testing.T) {
	_, err := NewPurchase(42, "card", nil, time.Now().UTC())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestPurchase_MarkPaid_ExactlyOnce(t *testing.T) {
	p, err := NewPurchase(42, "card", sampleSnapshot(), time.Now().UTC())
	require.NoError(t, err)

	paidAt := time.Now().UTC()
	require.NoError(t, p.MarkPaid(paidAt))
	assert.True(t, p.IsPaid())
	require.NotNil(t, p.PaidAt())
	assert.Equal(t, paidAt, *p.PaidAt())

	err = p.MarkPaid(paidAt.Add(time.Minute))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, paidAt, *p.PaidAt(), "paidAt must not move on replay")
}

func TestPurchase_SnapshotIsCopied(t *testing.T) {
	p, err := NewPurchase(42, "card", sampleSnapshot(), time.Now().UTC())
	require.NoError(t, err)

	snap := p.Snapshot()
	snap[0].Price = 999

	assert.InDelta(t, 6.78, p.Snapshot()[0].Price, 0.0001)
}
