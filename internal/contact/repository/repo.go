package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

const columns = "id, name, email, message, read, created_at"

// Repo provides persistence operations for contact messages.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func scan(row interface{ Scan(...any) error }) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all messages newest first. The route is admin-only, so no
// filtering happens here.
func (r *Repo) List(ctx context.Context, _ resource.Viewer) ([]domain.Message, error) {
	const q = `
SELECT ` + columns + `
FROM contact_messages
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Message, 0, 16)
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// Get exists to satisfy the store contract; the endpoint does not expose a
// detail route for messages.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Message, error) {
	const q = `
SELECT ` + columns + `
FROM contact_messages
WHERE id = $1;
`
	m, err := scan(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *Repo) Create(ctx context.Context, _ resource.Viewer, in domain.NewMessage) (*domain.Message, error) {
	const q = `
INSERT INTO contact_messages (id, name, email, message)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns + `;
`
	return scan(r.db.QueryRowContext(ctx, q, uuid.NewString(), in.Name, in.Email, in.Message))
}

// Update marks the message as read; no other field is mutable.
func (r *Repo) Update(ctx context.Context, id string, _ domain.MarkRead) (*domain.Message, error) {
	const q = `
UPDATE contact_messages
SET read = true
WHERE id = $1
RETURNING ` + columns + `;
`
	m, err := scan(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resource.ErrNotFound
	}
	return nil
}
