package usecases

import (
	"context"
	"fmt"

	"bookworm/internal/domain/user"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// PasswordHasher hashes and verifies account passwords. Implemented with
// bcrypt in the auth infrastructure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints and stores a session token for an authenticated user.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uint, role string) (string, error)
}

// RegisterCommand carries a new account's fields.
type RegisterCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterUseCase creates a customer account and signs it in.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	if len(cmd.Password) < 8 {
		return nil, apperrors.NewValidationError("Password must be at least 8 characters long.")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := user.NewUser(cmd.Email, hash, cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewValidationError("An account with that email already exists.")
		}
		uc.logger.Errorw("failed to create user", "error", err, "email", account.Email())
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokens.Issue(ctx, account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", account.ID(), "email", account.Email())

	return &AuthResult{User: toUserDTO(account), Token: token}, nil
}
