package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
	"github.com/devfolio/portfolio-backend/internal/auth/service"
	"github.com/devfolio/portfolio-backend/internal/resource"
)

const ctxSession = "auth_session"

// LoadSession resolves the session cookie into a request-scoped principal.
// Any failure (missing cookie, revoked, expired, Redis down) leaves the
// caller anonymous; the Require* guards then fail closed.
func LoadSession(svc *service.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			resource.SetViewer(c, resource.Viewer{})
			c.Next()
			return
		}

		sess, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			resource.SetViewer(c, resource.Viewer{})
			c.Next()
			return
		}

		c.Set(ctxSession, sess)
		resource.SetViewer(c, resource.Viewer{
			Authenticated: true,
			Admin:         sess.Admin(),
			UserID:        sess.UserID,
		})
		c.Next()
	}
}

// SessionFrom returns the resolved session, or nil for anonymous callers.
func SessionFrom(c *gin.Context) *domain.Session {
	if raw, ok := c.Get(ctxSession); ok {
		if sess, ok := raw.(*domain.Session); ok {
			return sess
		}
	}
	return nil
}

// RequireAuth rejects anonymous callers before any resource operation runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous callers with 401 and authenticated
// non-admins with 403; the two outcomes stay distinct.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			c.Abort()
			return
		}
		if !sess.Admin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
