package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookworm/internal/domain/subscription"
	"bookworm/internal/infrastructure/persistence/mappers"
	"bookworm/internal/infrastructure/persistence/models"
	"bookworm/internal/shared/db"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

type StartedReadingBookRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStartedReadingBookRepository(gdb *gorm.DB, logger logger.Interface) subscription.StartedReadingBookRepository {
	return &StartedReadingBookRepositoryImpl{db: gdb, logger: logger}
}

func (r *StartedReadingBookRepositoryImpl) Create(ctx context.Context, record *subscription.StartedReadingBook) error {
	model := mappers.StartedReadingBookToModel(record)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("book already started by this user")
		}
		r.logger.Errorw("failed to create started reading record", "error", err, "user_id", record.UserID(), "book_id", record.BookID())
		return fmt.Errorf("failed to create started reading record: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

func (r *StartedReadingBookRepositoryImpl) CountInPeriod(ctx context.Context, userID, subscriptionID uint, from, to time.Time) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.StartedReadingBookModel{}).
		Where("user_id = ? AND user_subscription_id = ?", userID, subscriptionID).
		Where("started_at >= ? AND started_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count started books", "error", err, "user_id", userID, "subscription_id", subscriptionID)
		return 0, fmt.Errorf("failed to count started books: %w", err)
	}
	return count, nil
}

func (r *StartedReadingBookRepositoryImpl) ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.StartedReadingBookModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check started reading record", "error", err, "user_id", userID, "book_id", bookID)
		return false, fmt.Errorf("failed to check started reading record: %w", err)
	}
	return count > 0, nil
}
