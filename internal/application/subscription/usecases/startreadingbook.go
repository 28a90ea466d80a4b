package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/purchase"
	"bookworm/internal/domain/subscription"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// StartReadingBookUseCase enforces the monthly reading quota. The checks
// run in a fixed order so each failure mode is distinguishable: no active
// subscription, book already owned, quota used up, book already started.
type StartReadingBookUseCase struct {
	subRepo          subscription.UserSubscriptionRepository
	startedRepo      subscription.StartedReadingBookRepository
	bookPurchaseRepo purchase.BookPurchaseRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewStartReadingBookUseCase(
	subRepo subscription.UserSubscriptionRepository,
	startedRepo subscription.StartedReadingBookRepository,
	bookPurchaseRepo purchase.BookPurchaseRepository,
	clk clock.Clock,
	logger logger.Interface,
) *StartReadingBookUseCase {
	return &StartReadingBookUseCase{
		subRepo:          subRepo,
		startedRepo:      startedRepo,
		bookPurchaseRepo: bookPurchaseRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *StartReadingBookUseCase) Execute(ctx context.Context, userID, bookID uint) (*StartedReadingBookDTO, error) {
	now := uc.clock.Now()

	sub, err := uc.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to look up current subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to look up current subscription: %w", err)
	}
	if sub == nil || !sub.IsActive(now) {
		return nil, apperrors.NewValidationError("You are not subscribed to a plan.")
	}

	owned, err := uc.bookPurchaseRepo.ExistsByUserAndBook(ctx, userID, bookID)
	if err != nil {
		uc.logger.Errorw("failed to check book ownership", "error", err, "user_id", userID, "book_id", bookID)
		return nil, fmt.Errorf("failed to check book ownership: %w", err)
	}
	if owned {
		return nil, apperrors.NewValidationError("You already own this book.")
	}

	started, err := uc.startedRepo.CountInPeriod(ctx, userID, sub.ID(), sub.SubscribedAt(), sub.ExpiresAt())
	if err != nil {
		uc.logger.Errorw("failed to count started books", "error", err, "user_id", userID, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to count started books: %w", err)
	}
	if started >= int64(sub.BooksPerMonth()) {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"You have reached your quota of %d books for the current subscription period (%s to %s).",
			sub.BooksPerMonth(),
			sub.SubscribedAt().Format("2006-01-02"),
			sub.ExpiresAt().Format("2006-01-02"),
		))
	}

	record, err := subscription.NewStartedReadingBook(userID, bookID, sub.ID(), now)
	if err != nil {
		return nil, err
	}

	if err := uc.startedRepo.Create(ctx, record); err != nil {
		// the (user, book) pair is unique; a second start is not an error state
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("You can already read this book.")
		}
		uc.logger.Errorw("failed to record started book", "error", err, "user_id", userID, "book_id", bookID)
		return nil, fmt.Errorf("failed to record started book: %w", err)
	}

	uc.logger.Infow("book reading started",
		"user_id", userID,
		"book_id", bookID,
		"subscription_id", sub.ID(),
		"started_in_period", started+1,
	)

	dto := toStartedReadingBookDTO(record)
	return &dto, nil
}
