package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CompleteCheckoutUseCase applies a confirmed payment to a pending
// purchase: marks it paid and writes the ownership links from the frozen
// snapshot, both in one transaction.
//
// The gateway redelivers events until it sees success, so the operation
// is idempotent: an already-paid purchase is reported as applied without
// new side effects, and a duplicate-key failure on the links is treated
// the same way. Only transient failures propagate, which makes the
// gateway retry.
type CompleteCheckoutUseCase struct {
	purchaseRepo     purchase.Repository
	bookPurchaseRepo purchase.BookPurchaseRepository
	tx               db.Transactor
	clock            clock.Clock
	logger           logger.Interface
}

func NewCompleteCheckoutUseCase(
	purchaseRepo purchase.Repository,
	bookPurchaseRepo purchase.BookPurchaseRepository,
	tx db.Transactor,
	clk clock.Clock,
	logger logger.Interface,
) *CompleteCheckoutUseCase {
	return &CompleteCheckoutUseCase{
		purchaseRepo:     purchaseRepo,
		bookPurchaseRepo: bookPurchaseRepo,
		tx:               tx,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *CompleteCheckoutUseCase) Execute(ctx context.Context, customerID, purchaseID uint) error {
	p, err := uc.purchaseRepo.GetByID(ctx, purchaseID, &customerID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperrors.NewNotFoundError("Purchase not found.")
	}

	if p.IsPaid() {
		uc.logger.Infow("checkout already completed, skipping", "purchase_id", purchaseID, "user_id", customerID)
		return nil
	}

	if err := p.MarkPaid(uc.clock.Now()); err != nil {
		return err
	}

	snapshot := p.Snapshot()
	links := make([]*purchase.BookPurchase, 0, len(snapshot))
	for _, view := range snapshot {
		link, err := purchase.NewBookPurchase(p.ID(), view.BookID, p.UserID(), view)
		if err != nil {
			return err
		}
		links = append(links, link)
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.purchaseRepo.Update(txCtx, p); err != nil {
			return fmt.Errorf("failed to mark purchase paid: %w", err)
		}
		if err := uc.bookPurchaseRepo.CreateBatch(txCtx, links); err != nil {
			return fmt.Errorf("failed to create book purchases: %w", err)
		}
		return nil
	})
	if err != nil {
		// two deliveries raced past the paid check; the first one won
		if apperrors.IsConflictError(err) {
			uc.logger.Infow("checkout already completed by concurrent delivery", "purchase_id", purchaseID)
			return nil
		}
		uc.logger.Errorw("failed to complete checkout", "error", err, "purchase_id", purchaseID)
		return err
	}

	uc.logger.Infow("checkout payment applied",
		"purchase_id", purchaseID,
		"user_id", customerID,
		"books", len(links),
	)
	return nil
}
