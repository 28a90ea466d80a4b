package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"bookworm/internal/infrastructure/cache"
)

// SessionTokenIssuer mints a JWT bound to a Redis-backed session, so a
// token stays valid only while its session row exists.
type SessionTokenIssuer struct {
	jwt      *JWTService
	sessions *cache.SessionStore
}

func NewSessionTokenIssuer(jwt *JWTService, sessions *cache.SessionStore) *SessionTokenIssuer {
	return &SessionTokenIssuer{jwt: jwt, sessions: sessions}
}

func (i *SessionTokenIssuer) Issue(ctx context.Context, userID uint, role string) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	sessionID := hex.EncodeToString(raw)

	if err := i.sessions.Save(ctx, sessionID, userID); err != nil {
		return "", err
	}

	token, err := i.jwt.Generate(userID, sessionID, role)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Revoke deletes the backing session, invalidating every token bound
// to it regardless of JWT expiry.
func (i *SessionTokenIssuer) Revoke(ctx context.Context, sessionID string) error {
	return i.sessions.Delete(ctx, sessionID)
}
