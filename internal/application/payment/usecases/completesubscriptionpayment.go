package usecases

import (
	"context"
	"errors"

	subscriptionusecases "bookworm/internal/application/subscription/usecases"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// SubscriptionEnroller enrolls a customer in a plan. Satisfied by the
// subscription engine's subscribe use case.
type SubscriptionEnroller interface {
	Execute(ctx context.Context, userID, planID uint) (*subscriptionusecases.UserSubscriptionDTO, error)
}

// CompleteSubscriptionPaymentUseCase reacts to a confirmed subscription
// payment by enrolling the customer. A replayed delivery finds the user
// already subscribed and reports success without side effects.
type CompleteSubscriptionPaymentUseCase struct {
	enroller SubscriptionEnroller
	logger   logger.Interface
}

func NewCompleteSubscriptionPaymentUseCase(enroller SubscriptionEnroller, logger logger.Interface) *CompleteSubscriptionPaymentUseCase {
	return &CompleteSubscriptionPaymentUseCase{enroller: enroller, logger: logger}
}

func (uc *CompleteSubscriptionPaymentUseCase) Execute(ctx context.Context, customerID, planID uint) error {
	_, err := uc.enroller.Execute(ctx, customerID, planID)
	if err != nil {
		// only the already-subscribed outcome counts as a replay; any
		// other validation failure means the enrollment never happened
		if errors.Is(err, subscriptionusecases.ErrAlreadySubscribed) || apperrors.IsConflictError(err) {
			uc.logger.Infow("subscription payment already applied, skipping", "user_id", customerID, "plan_id", planID)
			return nil
		}
		uc.logger.Errorw("failed to apply subscription payment", "error", err, "user_id", customerID, "plan_id", planID)
		return err
	}

	uc.logger.Infow("subscription payment applied", "user_id", customerID, "plan_id", planID)
	return nil
}
