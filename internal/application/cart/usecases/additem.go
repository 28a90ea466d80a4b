package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/cart"
	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
	"bookworm/internal/shared/clock"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// AddItemUseCase puts a book into a user's cart. A book the user already
// owns, or one already sitting in the cart, is rejected with a domain
// error rather than a raw storage failure.
type AddItemUseCase struct {
	cartRepo         cart.Repository
	bookPurchaseRepo purchase.BookPurchaseRepository
	readModel        catalog.ReadModel
	clock            clock.Clock
	logger           logger.Interface
}

func NewAddItemUseCase(
	cartRepo cart.Repository,
	bookPurchaseRepo purchase.BookPurchaseRepository,
	readModel catalog.ReadModel,
	clk clock.Clock,
	logger logger.Interface,
) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo:         cartRepo,
		bookPurchaseRepo: bookPurchaseRepo,
		readModel:        readModel,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *AddItemUseCase) Execute(ctx context.Context, userID, bookID uint) (*CartLineDTO, error) {
	owned, err := uc.bookPurchaseRepo.ExistsByUserAndBook(ctx, userID, bookID)
	if err != nil {
		uc.logger.Errorw("failed to check book ownership", "error", err, "user_id", userID, "book_id", bookID)
		return nil, fmt.Errorf("failed to check book ownership: %w", err)
	}
	if owned {
		return nil, apperrors.NewValidationError("You already own this book.")
	}

	line, err := cart.NewLine(userID, bookID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.cartRepo.Create(ctx, line); err != nil {
		// the repository has already translated duplicate and FK errors
		return nil, err
	}

	view, err := uc.readModel.ResolveBookForCartLine(ctx, bookID)
	if err != nil {
		uc.logger.Errorw("failed to resolve added cart line", "error", err, "book_id", bookID)
		return nil, fmt.Errorf("failed to resolve cart line: %w", err)
	}

	uc.logger.Infow("cart line added", "user_id", userID, "book_id", bookID, "line_id", line.ID())

	dto := toCartLineDTO(line.ID(), view)
	return &dto, nil
}
