package contact

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
	"github.com/devfolio/portfolio-backend/internal/contact/repository"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

// Register wires the contact endpoint: anyone may submit, only the admin may
// read, mark or delete. There is no detail route.
func Register(rg *gin.RouterGroup, g resource.Guards, repo *repository.Repo) {
	resource.Register(rg, g, Descriptor(repo))
}

// Descriptor builds the contact resource configuration.
func Descriptor(store resource.Store[domain.Message, domain.NewMessage, domain.MarkRead]) resource.Descriptor[domain.Message, domain.NewMessage, domain.MarkRead] {
	return resource.Descriptor[domain.Message, domain.NewMessage, domain.MarkRead]{
		Label:          "Message",
		Singular:       "message",
		Plural:         "messages",
		Store:          store,
		ValidateCreate: ValidateCreate,
		CreatedMessage: "Message sent successfully",
		DeletedMessage: "Message deleted",
		Ops: resource.Ops{
			List:         resource.AdminOnly,
			Get:          resource.Disabled,
			Create:       resource.Public,
			Update:       resource.AdminOnly,
			Delete:       resource.AdminOnly,
			UpdateMethod: http.MethodPatch,
		},
	}
}

// ValidateCreate enforces the three required fields.
func ValidateCreate(in *domain.NewMessage) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" || in.Email == "" || in.Message == "" {
		return resource.Invalid("All fields are required")
	}
	return nil
}
