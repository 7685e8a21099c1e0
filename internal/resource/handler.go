// Package resource implements the uniform five-operation CRUD endpoint shared
// by projects, blogs and contact messages. Each resource instantiates one
// Descriptor with its store, validators and per-operation access levels; the
// handler code exists exactly once.
package resource

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Access is the privilege a route requires before its store operation runs.
type Access int

const (
	// Disabled routes are not registered at all.
	Disabled Access = iota
	Public
	Authenticated
	AdminOnly
)

// Guards supplies the middleware enforcing each access level. They are built
// by the auth package and injected here to keep this package free of session
// mechanics.
type Guards struct {
	Authenticated gin.HandlerFunc
	Admin         gin.HandlerFunc
}

func (g Guards) chain(a Access, final gin.HandlerFunc) []gin.HandlerFunc {
	switch a {
	case Authenticated:
		return []gin.HandlerFunc{g.Authenticated, final}
	case AdminOnly:
		return []gin.HandlerFunc{g.Admin, final}
	default:
		return []gin.HandlerFunc{final}
	}
}

// Store is the persistence contract behind one resource. E is the entity,
// C the create input, U the partial update input. Every call is a single
// atomic operation against the database; missing identifiers surface as
// ErrNotFound.
type Store[E, C, U any] interface {
	List(ctx context.Context, v Viewer) ([]E, error)
	Get(ctx context.Context, id string) (*E, error)
	Create(ctx context.Context, v Viewer, in C) (*E, error)
	Update(ctx context.Context, id string, in U) (*E, error)
	Delete(ctx context.Context, id string) error
}

// Ops selects which operations a resource exposes and at what access level.
type Ops struct {
	List   Access
	Get    Access
	Create Access
	Update Access
	Delete Access

	// UpdateMethod is the HTTP verb for Update (PUT by default; contact
	// messages use PATCH).
	UpdateMethod string
}

// Descriptor configures one resource endpoint. Policy lives here as data;
// the handler logic is shared.
type Descriptor[E, C, U any] struct {
	// Label is the capitalized name used in error messages ("Project").
	Label string
	// Singular and Plural are the JSON payload keys.
	Singular string
	Plural   string

	Store Store[E, C, U]

	// ValidateCreate may normalize the input in place and reject it with a
	// ValidationError. Nil means no validation.
	ValidateCreate func(*C) error
	ValidateUpdate func(*U) error

	// CreatedMessage, when set, replaces the entity payload in the create
	// response (contact submissions do not echo the message back).
	CreatedMessage string
	DeletedMessage string

	Ops Ops
}

// opTimeout bounds every persistence call; the store has no retry or
// cancellation semantics beyond this.
const opTimeout = 5 * time.Second

type handler[E, C, U any] struct {
	d Descriptor[E, C, U]
}

// Register binds the descriptor's operations to the route group.
func Register[E, C, U any](rg *gin.RouterGroup, g Guards, d Descriptor[E, C, U]) {
	h := &handler[E, C, U]{d: d}

	if d.Ops.List != Disabled {
		rg.GET("", g.chain(d.Ops.List, h.list)...)
	}
	if d.Ops.Get != Disabled {
		rg.GET("/:id", g.chain(d.Ops.Get, h.get)...)
	}
	if d.Ops.Create != Disabled {
		rg.POST("", g.chain(d.Ops.Create, h.create)...)
	}
	if d.Ops.Update != Disabled {
		method := d.Ops.UpdateMethod
		if method == "" {
			method = http.MethodPut
		}
		rg.Handle(method, "/:id", g.chain(d.Ops.Update, h.update)...)
	}
	if d.Ops.Delete != Disabled {
		rg.DELETE("/:id", g.chain(d.Ops.Delete, h.remove)...)
	}
}

func opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), opTimeout)
}

func (h *handler[E, C, U]) list(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	items, err := h.d.Store.List(ctx, ViewerFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, h.d.Plural: items})
}

func (h *handler[E, C, U]) get(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	item, err := h.d.Store.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, h.d.Singular: item})
}

func (h *handler[E, C, U]) create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	if h.d.ValidateCreate != nil {
		if err := h.d.ValidateCreate(&in); err != nil {
			h.fail(c, err)
			return
		}
	}

	ctx, cancel := opContext(c)
	defer cancel()

	item, err := h.d.Store.Create(ctx, ViewerFrom(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	if h.d.CreatedMessage != "" {
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": h.d.CreatedMessage})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, h.d.Singular: item})
}

func (h *handler[E, C, U]) update(c *gin.Context) {
	var in U
	// an empty body is a valid partial update (contact's PATCH carries none)
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	if h.d.ValidateUpdate != nil {
		if err := h.d.ValidateUpdate(&in); err != nil {
			h.fail(c, err)
			return
		}
	}

	ctx, cancel := opContext(c)
	defer cancel()

	item, err := h.d.Store.Update(ctx, c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, h.d.Singular: item})
}

func (h *handler[E, C, U]) remove(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.d.Store.Delete(ctx, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": h.d.DeletedMessage})
}

// fail converts expected error kinds to their status before anything reaches
// the generic 500 path.
func (h *handler[E, C, U]) fail(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": h.d.Label + " not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	}
}
