// Package session persists issued sessions in Redis. A session is an opaque
// random token mapping to a JSON principal with a TTL equal to its expiry, so
// logout (DEL) renders the credential unusable immediately and expiry needs
// no sweeper. Validation is a fresh lookup per request; no session state
// lives in process memory.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

const keyPrefix = "auth:session:"

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// NewToken returns an unguessable session token.
func NewToken() string {
	return uuid.NewString() + uuid.NewString()
}

func (s *Store) key(token string) string { return keyPrefix + token }

// Create persists the session with a TTL ending at its expiry.
func (s *Store) Create(ctx context.Context, sess domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sess.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get resolves a token to its session. Missing, revoked and expired tokens
// all surface as ErrSessionNotFound.
func (s *Store) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	sess.Token = token

	// Redis TTL already bounds the lifetime; the explicit check guards
	// against clock drift between issue and storage.
	if sess.Expired(time.Now()) {
		_ = s.Revoke(ctx, token)
		return nil, domain.ErrSessionNotFound
	}

	return &sess, nil
}

// Revoke deletes the session server-side. Idempotent.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
