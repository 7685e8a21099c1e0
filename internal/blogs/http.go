package blogs

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/blogs/domain"
	"github.com/devfolio/portfolio-backend/internal/blogs/repository"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

// Register wires the blog endpoint. Listing filters to published posts for
// non-admin callers inside the store; the detail route stays unfiltered so
// draft preview links keep working.
func Register(rg *gin.RouterGroup, g resource.Guards, repo *repository.Repo) {
	resource.Register(rg, g, Descriptor(repo))
}

// Descriptor builds the blog resource configuration.
func Descriptor(store resource.Store[domain.Blog, domain.CreateBlog, domain.UpdateBlog]) resource.Descriptor[domain.Blog, domain.CreateBlog, domain.UpdateBlog] {
	return resource.Descriptor[domain.Blog, domain.CreateBlog, domain.UpdateBlog]{
		Label:          "Blog",
		Singular:       "blog",
		Plural:         "blogs",
		Store:          store,
		ValidateCreate: ValidateCreate,
		DeletedMessage: "Blog deleted",
		Ops: resource.Ops{
			List:         resource.Public,
			Get:          resource.Public,
			Create:       resource.AdminOnly,
			Update:       resource.AdminOnly,
			Delete:       resource.AdminOnly,
			UpdateMethod: http.MethodPut,
		},
	}
}

// ValidateCreate trims and enforces the required fields.
func ValidateCreate(in *domain.CreateBlog) error {
	in.Title = strings.TrimSpace(in.Title)

	if in.Title == "" {
		return resource.Invalid("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return resource.Invalid("content is required")
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return nil
}
