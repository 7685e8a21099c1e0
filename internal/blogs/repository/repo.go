package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/devfolio/portfolio-backend/internal/blogs/domain"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

// Every read joins the author for display. The join is LEFT so a deleted
// user degrades to an absent author instead of hiding the post.
const selectBlog = `
SELECT b.id, b.title, b.content, b.summary, b.cover_image, b.tags,
       b.published, b.publish_at, b.created_at, b.updated_at,
       u.id, u.name
FROM blogs b
LEFT JOIN users u ON u.id = b.author_id`

// Repo provides persistence operations for blog posts.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func scan(row interface{ Scan(...any) error }) (*domain.Blog, error) {
	var (
		b          domain.Blog
		authorID   sql.NullString
		authorName sql.NullString
	)
	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Summary, &b.CoverImage, pq.Array(&b.Tags),
		&b.Published, &b.PublishAt, &b.CreatedAt, &b.UpdatedAt, &authorID, &authorName)
	if err != nil {
		return nil, err
	}
	if authorID.Valid {
		b.Author = &domain.Author{ID: authorID.String, Name: authorName.String}
	}
	return &b, nil
}

// List returns posts newest first. Unpublished posts are visible to admin
// callers only; everyone else sees the published set.
func (r *Repo) List(ctx context.Context, v resource.Viewer) ([]domain.Blog, error) {
	q := selectBlog
	if !v.Admin {
		q += `
WHERE b.published = true`
	}
	q += `
ORDER BY b.created_at DESC;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Blog, 0, 16)
	for rows.Next() {
		b, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// Get fetches one post by id regardless of published state: draft preview
// links work for anyone holding the id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Blog, error) {
	b, err := scan(r.db.QueryRowContext(ctx, selectBlog+`
WHERE b.id = $1;`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *Repo) Create(ctx context.Context, v resource.Viewer, in domain.CreateBlog) (*domain.Blog, error) {
	const q = `
WITH inserted AS (
    INSERT INTO blogs (id, title, content, summary, cover_image, tags, published, publish_at, author_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid)
    RETURNING *
)
SELECT b.id, b.title, b.content, b.summary, b.cover_image, b.tags,
       b.published, b.publish_at, b.created_at, b.updated_at,
       u.id, u.name
FROM inserted b
LEFT JOIN users u ON u.id = b.author_id;
`
	return scan(r.db.QueryRowContext(ctx, q,
		uuid.NewString(), in.Title, in.Content, in.Summary, in.CoverImage,
		pq.Array(in.Tags), in.Published, in.PublishAt, v.UserID))
}

func (r *Repo) Update(ctx context.Context, id string, in domain.UpdateBlog) (*domain.Blog, error) {
	const q = `
WITH updated AS (
    UPDATE blogs
    SET title       = COALESCE($2, title),
        content     = COALESCE($3, content),
        summary     = COALESCE($4, summary),
        cover_image = COALESCE($5, cover_image),
        tags        = COALESCE($6, tags),
        published   = COALESCE($7, published),
        publish_at  = COALESCE($8, publish_at),
        updated_at  = now()
    WHERE id = $1
    RETURNING *
)
SELECT b.id, b.title, b.content, b.summary, b.cover_image, b.tags,
       b.published, b.publish_at, b.created_at, b.updated_at,
       u.id, u.name
FROM updated b
LEFT JOIN users u ON u.id = b.author_id;
`
	b, err := scan(r.db.QueryRowContext(ctx, q, id,
		in.Title, in.Content, in.Summary, in.CoverImage,
		pq.Array(in.Tags), in.Published, in.PublishAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resource.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1;`, id)
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

// PublishDue flips posts whose scheduled time has passed. Returns the number
// of posts published.
func (r *Repo) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
UPDATE blogs
SET published = true, publish_at = NULL, updated_at = now()
WHERE published = false AND publish_at IS NOT NULL AND publish_at <= $1;
`
	result, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
