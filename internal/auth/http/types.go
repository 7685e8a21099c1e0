package http

import (
	"github.com/devfolio/portfolio-backend/internal/auth/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CookieSettings controls how the session credential is transmitted.
type CookieSettings struct {
	Name string
	// MaxAge is the cookie lifetime in seconds; it matches the session TTL.
	MaxAge int
	// Secure is set in production; the admin frontend runs on another
	// origin, so the cookie must survive cross-site requests there.
	Secure bool
}

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	svc    *service.Service
	cookie CookieSettings
}

func New(svc *service.Service, cookie CookieSettings) *Handler {
	return &Handler{svc: svc, cookie: cookie}
}
