package projects_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/projects"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

func TestValidateCreate(t *testing.T) {
	t.Run("requires title", func(t *testing.T) {
		in := domain.CreateProject{Description: "d"}
		err := projects.ValidateCreate(&in)
		require.Error(t, err)
		assert.Equal(t, "title is required", err.Error())
	})

	t.Run("requires description", func(t *testing.T) {
		in := domain.CreateProject{Title: "t"}
		err := projects.ValidateCreate(&in)
		require.Error(t, err)
		assert.Equal(t, "description is required", err.Error())
	})

	t.Run("whitespace is empty", func(t *testing.T) {
		in := domain.CreateProject{Title: "  \t", Description: "d"}
		assert.Error(t, projects.ValidateCreate(&in))
	})

	t.Run("trims and normalizes", func(t *testing.T) {
		in := domain.CreateProject{Title: "  t  ", Description: " d "}
		require.NoError(t, projects.ValidateCreate(&in))
		assert.Equal(t, "t", in.Title)
		assert.Equal(t, "d", in.Description)
		assert.NotNil(t, in.TechStack, "tech stack defaults to an empty list")
	})
}

type memStore struct {
	seq   int
	items map[string]domain.Project
}

func (s *memStore) List(_ context.Context, _ resource.Viewer) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	return out, nil
}

func (s *memStore) Get(_ context.Context, id string) (*domain.Project, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return &p, nil
}

func (s *memStore) Create(_ context.Context, _ resource.Viewer, in domain.CreateProject) (*domain.Project, error) {
	s.seq++
	p := domain.Project{
		ID:          fmt.Sprintf("p-%d", s.seq),
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.items[p.ID] = p
	return &p, nil
}

func (s *memStore) Update(_ context.Context, id string, in domain.UpdateProject) (*domain.Project, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.TechStack != nil {
		p.TechStack = in.TechStack
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	s.items[id] = p
	return &p, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return resource.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func newRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	allow := func(c *gin.Context) { c.Next() }
	resource.Register(r.Group("/projects"), resource.Guards{Authenticated: allow, Admin: allow}, projects.Descriptor(store))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestProjects_CreateGetUpdateDelete(t *testing.T) {
	store := &memStore{items: make(map[string]domain.Project)}
	r := newRouter(store)

	w, body := do(t, r, http.MethodPost, "/projects",
		`{"title":"Portfolio","description":"This site","techStack":["go","postgres"],"featured":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := body["project"].(map[string]any)
	id := created["id"].(string)
	assert.Equal(t, true, created["featured"])

	w, body = do(t, r, http.MethodGet, "/projects/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := body["project"].(map[string]any)
	assert.Equal(t, "Portfolio", got["title"])
	assert.Equal(t, []any{"go", "postgres"}, got["techStack"])

	// partial update touches only the named fields
	w, body = do(t, r, http.MethodPut, "/projects/"+id, `{"title":"Portfolio v2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := body["project"].(map[string]any)
	assert.Equal(t, "Portfolio v2", updated["title"])
	assert.Equal(t, "This site", updated["description"])

	w, body = do(t, r, http.MethodDelete, "/projects/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Project deleted", body["message"])

	w, body = do(t, r, http.MethodGet, "/projects/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", body["message"])
}

func TestProjects_CreateRejectsMissingFields(t *testing.T) {
	store := &memStore{items: make(map[string]domain.Project)}
	r := newRouter(store)

	w, body := do(t, r, http.MethodPost, "/projects", `{"title":"no description"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "description is required", body["message"])
	assert.Empty(t, store.items)
}
