package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
	"github.com/devfolio/portfolio-backend/internal/auth/session"
)

// UserStore exposes the credential lookups the auth flows need.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Credentials, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionStore captures the persistence interactions for issued sessions.
type SessionStore interface {
	Create(ctx context.Context, sess domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Revoke(ctx context.Context, token string) error
}

// Service coordinates login, logout and per-request session resolution.
type Service struct {
	users    UserStore
	sessions SessionStore
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

func New(users UserStore, sessions SessionStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		newToken: session.NewToken,
	}
}

// Login verifies the credentials and issues a session bound to the user's
// identity and role. Unknown emails and wrong passwords are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	creds, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	sess := domain.Session{
		Token:     s.newToken(),
		UserID:    creds.ID,
		Role:      creds.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, nil, err
	}

	user := creds.User
	return &user, &sess, nil
}

// Logout revokes the session server-side; the token is unusable afterwards
// regardless of what the client keeps.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}

// Resolve validates a transmitted token. Missing, revoked and expired tokens
// return ErrSessionNotFound; the guard treats all of them as anonymous.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, token)
}

// CurrentUser loads the identity behind a resolved session.
func (s *Service) CurrentUser(ctx context.Context, sess *domain.Session) (*domain.User, error) {
	return s.users.GetByID(ctx, sess.UserID)
}

// HashPassword is used by the admin bootstrap at startup.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
