package domain

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the public identity; the password hash lives in Credentials and
// never leaves the repository layer.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Credentials struct {
	User
	PasswordHash string
}

// Session binds one identity and one privilege level to an opaque token for
// a fixed validity window. It is persisted in Redis keyed by the token; the
// token itself is never stored inside the value.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Admin() bool { return s.Role == RoleAdmin }

func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
)
