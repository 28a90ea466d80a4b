package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/cart"
	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/clock"
	"bookworm/internal/shared/constants"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CheckoutCommand selects the payment path. With SynchronousPayment the
// purchase is marked paid and the ownership links are written immediately;
// otherwise the purchase stays pending until the gateway webhook confirms
// payment and writes the links.
type CheckoutCommand struct {
	UserID             uint
	SynchronousPayment bool
}

// CheckoutUseCase converts a cart into an immutable purchase snapshot.
// Purchase creation, ownership links (synchronous path) and cart clearing
// happen inside one transaction; a failure partway leaves the cart intact
// and no purchase behind.
type CheckoutUseCase struct {
	cartRepo         cart.Repository
	purchaseRepo     purchase.Repository
	bookPurchaseRepo purchase.BookPurchaseRepository
	readModel        catalog.ReadModel
	tx               db.Transactor
	clock            clock.Clock
	logger           logger.Interface
}

func NewCheckoutUseCase(
	cartRepo cart.Repository,
	purchaseRepo purchase.Repository,
	bookPurchaseRepo purchase.BookPurchaseRepository,
	readModel catalog.ReadModel,
	tx db.Transactor,
	clk clock.Clock,
	logger logger.Interface,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:         cartRepo,
		purchaseRepo:     purchaseRepo,
		bookPurchaseRepo: bookPurchaseRepo,
		readModel:        readModel,
		tx:               tx,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *CheckoutUseCase) Execute(ctx context.Context, cmd CheckoutCommand) (*purchase.Purchase, error) {
	lines, err := uc.cartRepo.ListByUser(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list cart lines for checkout", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, apperrors.NewValidationError("Checkout failed because there are no items in the cart.")
	}

	snapshot := make([]catalog.BookLineView, 0, len(lines))
	for _, line := range lines {
		view, err := uc.readModel.ResolveBookForCartLine(ctx, line.BookID())
		if err != nil {
			uc.logger.Errorw("failed to resolve cart line for checkout", "error", err, "book_id", line.BookID())
			return nil, fmt.Errorf("failed to resolve cart line: %w", err)
		}
		snapshot = append(snapshot, *view)
	}

	now := uc.clock.Now()
	newPurchase, err := purchase.NewPurchase(cmd.UserID, constants.PaymentMethodCard, snapshot, now)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.purchaseRepo.Create(txCtx, newPurchase); err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		if cmd.SynchronousPayment {
			if err := newPurchase.MarkPaid(now); err != nil {
				return err
			}
			if err := uc.purchaseRepo.Update(txCtx, newPurchase); err != nil {
				return fmt.Errorf("failed to mark purchase paid: %w", err)
			}

			links := make([]*purchase.BookPurchase, 0, len(snapshot))
			for _, view := range snapshot {
				link, err := purchase.NewBookPurchase(newPurchase.ID(), view.BookID, cmd.UserID, view)
				if err != nil {
					return err
				}
				links = append(links, link)
			}
			if err := uc.bookPurchaseRepo.CreateBatch(txCtx, links); err != nil {
				return fmt.Errorf("failed to create book purchases: %w", err)
			}
		}

		if err := uc.cartRepo.ClearByUser(txCtx, cmd.UserID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("checkout transaction failed", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("checkout completed",
		"user_id", cmd.UserID,
		"purchase_id", newPurchase.ID(),
		"lines", len(snapshot),
		"paid", newPurchase.IsPaid(),
	)
	return newPurchase, nil
}
