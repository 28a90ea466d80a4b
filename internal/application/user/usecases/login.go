package usecases

import (
	"context"
	"fmt"
	"strings"

	"bookworm/internal/domain/user"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// LoginUseCase authenticates an account by email and password. Wrong
// email and wrong password produce the same error so credentials cannot
// be probed.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err, "email", email)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if account == nil {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password.")
	}

	if err := uc.hasher.Compare(account.PasswordHash(), password); err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password.")
	}

	token, err := uc.tokens.Issue(ctx, account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())

	return &AuthResult{User: toUserDTO(account), Token: token}, nil
}
