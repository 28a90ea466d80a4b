package usecases

import (
	"time"

	"bookworm/internal/domain/subscription"
)

// PlanDTO is the API representation of a subscription plan.
type PlanDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	BooksPerMonth int     `json:"booksPerMonth"`
	PricePerMonth float64 `json:"pricePerMonth"`
}

func toPlanDTO(p *subscription.Plan) PlanDTO {
	return PlanDTO{
		ID:            p.ID(),
		Name:          p.Name(),
		BooksPerMonth: p.BooksPerMonth(),
		PricePerMonth: p.PricePerMonth(),
	}
}

// UserSubscriptionDTO is the API representation of a customer enrollment.
// Plan terms are the ones frozen at subscribe time, not the plan's current
// values.
type UserSubscriptionDTO struct {
	ID            uint       `json:"id"`
	PlanID        uint       `json:"subscriptionPlanId"`
	Name          string     `json:"name"`
	BooksPerMonth int        `json:"booksPerMonth"`
	PricePerMonth float64    `json:"pricePerMonth"`
	SubscribedAt  time.Time  `json:"subscribedAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	LastRenewedAt *time.Time `json:"lastRenewedAt,omitempty"`
}

func toUserSubscriptionDTO(s *subscription.UserSubscription) UserSubscriptionDTO {
	return UserSubscriptionDTO{
		ID:            s.ID(),
		PlanID:        s.PlanID(),
		Name:          s.PlanName(),
		BooksPerMonth: s.BooksPerMonth(),
		PricePerMonth: s.PricePerMonth(),
		SubscribedAt:  s.SubscribedAt(),
		ExpiresAt:     s.ExpiresAt(),
		LastRenewedAt: s.LastRenewedAt(),
	}
}

// StartedReadingBookDTO is returned when a subscriber starts a book.
type StartedReadingBookDTO struct {
	ID                 uint      `json:"id"`
	BookID             uint      `json:"bookId"`
	UserSubscriptionID uint      `json:"userSubscriptionId"`
	StartedAt          time.Time `json:"startedAt"`
}

func toStartedReadingBookDTO(r *subscription.StartedReadingBook) StartedReadingBookDTO {
	return StartedReadingBookDTO{
		ID:                 r.ID(),
		BookID:             r.BookID(),
		UserSubscriptionID: r.UserSubscriptionID(),
		StartedAt:          r.StartedAt(),
	}
}
