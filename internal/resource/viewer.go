package resource

import "github.com/gin-gonic/gin"

const ctxViewer = "viewer"

// Viewer describes the caller's privilege as stores and handlers see it.
// It is derived from the session per request and never stored in-process.
type Viewer struct {
	Authenticated bool
	Admin         bool
	UserID        string
}

// SetViewer is called by the session middleware once the cookie is resolved.
func SetViewer(c *gin.Context, v Viewer) {
	c.Set(ctxViewer, v)
}

// ViewerFrom returns the caller's viewer; anonymous when no session was loaded.
func ViewerFrom(c *gin.Context) Viewer {
	if raw, ok := c.Get(ctxViewer); ok {
		if v, ok := raw.(Viewer); ok {
			return v
		}
	}
	return Viewer{}
}
