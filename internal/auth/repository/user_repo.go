package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

// UserRepository provides persistence operations for user identities.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	const q = `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE email = $1;
`
	var c domain.Credentials
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Role, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id, name, email, role, created_at
FROM users
WHERE id = $1;
`
	var u domain.User
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// EnsureAdmin upserts the bootstrap admin account. Called once at startup so
// a fresh deployment always has a way in; the hash is refreshed on every boot
// so rotating ADMIN_PASSWORD takes effect.
func (r *UserRepository) EnsureAdmin(ctx context.Context, name, email, passwordHash string) error {
	const q = `
INSERT INTO users (id, name, email, password_hash, role)
VALUES ($1, $2, $3, $4, 'admin')
ON CONFLICT (email) DO UPDATE
SET name = excluded.name,
    password_hash = excluded.password_hash,
    role = 'admin';
`
	_, err := r.db.ExecContext(ctx, q, uuid.NewString(), name, email, passwordHash)
	return err
}
