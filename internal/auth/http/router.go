package http

import (
	"github.com/gin-gonic/gin"

	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
)

// Register attaches auth routes to the given router group. loginThrottle is
// the per-IP rate limit applied to credential guessing.
func (h *Handler) Register(rg *gin.RouterGroup, loginThrottle gin.HandlerFunc) {
	if loginThrottle != nil {
		rg.POST("/login", loginThrottle, h.login)
	} else {
		rg.POST("/login", h.login)
	}
	rg.POST("/logout", authmw.RequireAuth(), h.logout)
	rg.GET("/me", authmw.RequireAuth(), h.me)
}
