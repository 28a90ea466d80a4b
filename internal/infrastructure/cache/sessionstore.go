// Package cache holds Redis-backed stores for short-lived state.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// ErrSessionNotFound is returned when a session is absent or expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// SessionStore keeps active sessions in Redis so tokens can be revoked
// server-side before their JWT expiry.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Save records an active session for the user.
func (s *SessionStore) Save(ctx context.Context, sessionID string, userID uint) error {
	key := sessionPrefix + sessionID
	if err := s.client.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the user ID behind an active session.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (uint, error) {
	key := sessionPrefix + sessionID
	userID, err := s.client.Get(ctx, key).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to load session: %w", err)
	}
	return uint(userID), nil
}

// Delete revokes a session.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	key := sessionPrefix + sessionID
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
