package projects

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/repository"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

// Register wires the project endpoint: public reads, admin-only mutations.
func Register(rg *gin.RouterGroup, g resource.Guards, repo *repository.Repo) {
	resource.Register(rg, g, Descriptor(repo))
}

// Descriptor builds the project resource configuration.
func Descriptor(store resource.Store[domain.Project, domain.CreateProject, domain.UpdateProject]) resource.Descriptor[domain.Project, domain.CreateProject, domain.UpdateProject] {
	return resource.Descriptor[domain.Project, domain.CreateProject, domain.UpdateProject]{
		Label:          "Project",
		Singular:       "project",
		Plural:         "projects",
		Store:          store,
		ValidateCreate: ValidateCreate,
		DeletedMessage: "Project deleted",
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
func ValidateCreate(in *domain.CreateProject) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		return resource.Invalid("title is required")
	}
	if in.Description == "" {
		return resource.Invalid("description is required")
	}
	if in.TechStack == nil {
		in.TechStack = []string{}
	}
	return nil
}
