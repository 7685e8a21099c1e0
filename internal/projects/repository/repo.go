package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

const columns = "id, title, description, tech_stack, github_url, live_url, image_url, featured, created_at, updated_at"

// Repo provides persistence operations for projects.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func scan(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, pq.Array(&p.TechStack),
		&p.GithubURL, &p.LiveURL, &p.ImageURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects, newest first. Projects have no visibility
// restriction, so the viewer is unused.
func (r *Repo) List(ctx context.Context, _ resource.Viewer) ([]domain.Project, error) {
	const q = `
SELECT ` + columns + `
FROM projects
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
SELECT ` + columns + `
FROM projects
WHERE id = $1;
`
	p, err := scan(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) Create(ctx context.Context, _ resource.Viewer, in domain.CreateProject) (*domain.Project, error) {
	const q = `
INSERT INTO projects (id, title, description, tech_stack, github_url, live_url, image_url, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns + `;
`
	return scan(r.db.QueryRowContext(ctx, q,
		uuid.NewString(), in.Title, in.Description, pq.Array(in.TechStack),
		in.GithubURL, in.LiveURL, in.ImageURL, in.Featured))
}

// Update applies a partial field set in one statement; absent fields keep
// their stored value.
func (r *Repo) Update(ctx context.Context, id string, in domain.UpdateProject) (*domain.Project, error) {
	const q = `
UPDATE projects
SET title       = COALESCE($2, title),
    description = COALESCE($3, description),
    tech_stack  = COALESCE($4, tech_stack),
    github_url  = COALESCE($5, github_url),
    live_url    = COALESCE($6, live_url),
    image_url   = COALESCE($7, image_url),
    featured    = COALESCE($8, featured),
    updated_at  = now()
WHERE id = $1
RETURNING ` + columns + `;
`
	p, err := scan(r.db.QueryRowContext(ctx, q, id,
		in.Title, in.Description, pq.Array(in.TechStack),
		in.GithubURL, in.LiveURL, in.ImageURL, in.Featured))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
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
