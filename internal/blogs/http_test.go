package blogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/blogs"
	"github.com/devfolio/portfolio-backend/internal/blogs/domain"
)

func TestValidateCreate(t *testing.T) {
	t.Run("requires title", func(t *testing.T) {
		in := domain.CreateBlog{Content: "<p>body</p>"}
		err := blogs.ValidateCreate(&in)
		require.Error(t, err)
		assert.Equal(t, "title is required", err.Error())
	})

	t.Run("requires content", func(t *testing.T) {
		in := domain.CreateBlog{Title: "Hello", Content: "   "}
		err := blogs.ValidateCreate(&in)
		require.Error(t, err)
		assert.Equal(t, "content is required", err.Error())
	})

	t.Run("valid input", func(t *testing.T) {
		in := domain.CreateBlog{Title: " Hello ", Content: "<p>body</p>"}
		require.NoError(t, blogs.ValidateCreate(&in))
		assert.Equal(t, "Hello", in.Title)
		assert.NotNil(t, in.Tags, "tags default to an empty list")
	})

	t.Run("content keeps markup intact", func(t *testing.T) {
		in := domain.CreateBlog{Title: "t", Content: "  <p>spaced</p>  "}
		require.NoError(t, blogs.ValidateCreate(&in))
		assert.Equal(t, "  <p>spaced</p>  ", in.Content, "content is stored as the editor produced it")
	})
}
