package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/shared/logger"
)

// SessionRevoker invalidates a live session by ID.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string) error
}

// LogoutUseCase revokes the caller's session so the JWT bound to it
// stops authenticating immediately.
type LogoutUseCase struct {
	sessions SessionRevoker
	logger   logger.Interface
}

func NewLogoutUseCase(sessions SessionRevoker, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, sessionID string) error {
	if err := uc.sessions.Revoke(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to revoke session", "error", err, "user_id", userID)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	uc.logger.Infow("user logged out", "user_id", userID)
	return nil
}
