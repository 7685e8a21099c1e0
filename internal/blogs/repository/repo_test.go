package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authrepo "github.com/devfolio/portfolio-backend/internal/auth/repository"
	"github.com/devfolio/portfolio-backend/internal/blogs/domain"
	"github.com/devfolio/portfolio-backend/internal/blogs/repository"
	"github.com/devfolio/portfolio-backend/internal/resource"
	"github.com/devfolio/portfolio-backend/internal/storage/postgres/postgrestest"
)

func setup(t *testing.T) (*repository.Repo, *sql.DB, string) {
	t.Helper()
	db := postgrestest.Open(t)

	ctx := context.Background()
	for _, table := range []string{"blogs", "contact_messages", "projects", "users"} {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}

	users := authrepo.NewUserRepository(db)
	require.NoError(t, users.EnsureAdmin(ctx, "Author", "author@site.dev", "x"))
	creds, err := users.GetByEmail(ctx, "author@site.dev")
	require.NoError(t, err)

	return repository.NewRepo(db), db, creds.ID
}

func asAuthor(userID string) resource.Viewer {
	return resource.Viewer{Authenticated: true, Admin: true, UserID: userID}
}

func TestList_FiltersUnpublishedForNonAdmin(t *testing.T) {
	repo, _, authorID := setup(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "live", Content: "x", Published: true, Tags: []string{}})
	require.NoError(t, err)
	draft, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "draft", Content: "x", Tags: []string{}})
	require.NoError(t, err)

	public, err := repo.List(ctx, resource.Viewer{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "live", public[0].Title)

	admin, err := repo.List(ctx, resource.Viewer{Authenticated: true, Admin: true})
	require.NoError(t, err)
	assert.Len(t, admin, 2)

	// the detail route is deliberately unfiltered: draft preview by id works
	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", got.Title)
	assert.False(t, got.Published)
}

func TestAuthor_ResolvedAndDegrades(t *testing.T) {
	repo, db, authorID := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "t", Content: "c", Tags: []string{}})
	require.NoError(t, err)
	require.NotNil(t, created.Author)
	assert.Equal(t, "Author", created.Author.Name)

	// deleting the user must not break reads; the post loses its author
	_, err = db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", authorID)
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Author)
}

func TestUpdate_PartialAndNotFound(t *testing.T) {
	repo, _, authorID := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "t", Content: "c", Summary: "s", Tags: []string{"go"}})
	require.NoError(t, err)

	title := "t2"
	updated, err := repo.Update(ctx, created.ID, domain.UpdateBlog{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "s", updated.Summary)
	assert.Equal(t, []string{"go"}, updated.Tags)

	_, err = repo.Update(ctx, "00000000-0000-0000-0000-000000000000", domain.UpdateBlog{Title: &title})
	assert.True(t, errors.Is(err, resource.ErrNotFound))
}

func TestDelete_SecondCallNotFound(t *testing.T) {
	repo, _, authorID := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "t", Content: "c", Tags: []string{}})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, created.ID), resource.ErrNotFound))
}

func TestPublishDue(t *testing.T) {
	repo, _, authorID := setup(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	due, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "due", Content: "c", PublishAt: &past, Tags: []string{}})
	require.NoError(t, err)
	early, err := repo.Create(ctx, asAuthor(authorID), domain.CreateBlog{Title: "early", Content: "c", PublishAt: &future, Tags: []string{}})
	require.NoError(t, err)

	n, err := repo.PublishDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	published, err := repo.Get(ctx, due.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)
	assert.Nil(t, published.PublishAt)

	waiting, err := repo.Get(ctx, early.ID)
	require.NoError(t, err)
	assert.False(t, waiting.Published)
}
