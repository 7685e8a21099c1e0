package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/devfolio/portfolio-backend/internal/api/http"
	authhttp "github.com/devfolio/portfolio-backend/internal/auth/http"
	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	authrepo "github.com/devfolio/portfolio-backend/internal/auth/repository"
	"github.com/devfolio/portfolio-backend/internal/auth/service"
	"github.com/devfolio/portfolio-backend/internal/auth/session"
	"github.com/devfolio/portfolio-backend/internal/blogs"
	blogsrepo "github.com/devfolio/portfolio-backend/internal/blogs/repository"
	"github.com/devfolio/portfolio-backend/internal/contact"
	contactrepo "github.com/devfolio/portfolio-backend/internal/contact/repository"
	"github.com/devfolio/portfolio-backend/internal/projects"
	projectsrepo "github.com/devfolio/portfolio-backend/internal/projects/repository"
	"github.com/devfolio/portfolio-backend/internal/ratelimit"
	"github.com/devfolio/portfolio-backend/internal/resource"
	"github.com/devfolio/portfolio-backend/internal/resume"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	DB           *sql.DB
	Redis        *redis.Client
	ClientOrigin string
	ResumeURL    string

	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
	LoginLimit   int
	LoginWindow  time.Duration
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// one configured client origin; credentials carry the session cookie
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	userRepo := authrepo.NewUserRepository(dep.DB)
	sessionStore := session.NewStore(dep.Redis)
	authService := service.New(userRepo, sessionStore, dep.SessionTTL)

	api := r.Group("/api")
	api.Use(authmw.LoadSession(authService, dep.CookieName))

	guards := resource.Guards{
		Authenticated: authmw.RequireAuth(),
		Admin:         authmw.RequireAdmin(),
	}

	loginLimiter := ratelimit.New(dep.Redis, "login", dep.LoginLimit, dep.LoginWindow)
	authHandler := authhttp.New(authService, authhttp.CookieSettings{
		Name:   dep.CookieName,
		MaxAge: int(dep.SessionTTL.Seconds()),
		Secure: dep.CookieSecure,
	})
	authHandler.Register(api.Group("/auth"), loginLimiter.Middleware())

	projects.Register(api.Group("/projects"), guards, projectsrepo.NewRepo(dep.DB))
	blogs.Register(api.Group("/blogs"), guards, blogsrepo.NewRepo(dep.DB))
	contact.Register(api.Group("/contact"), guards, contactrepo.NewRepo(dep.DB))

	resumeHandler := resume.New(dep.ResumeURL)
	resumeHandler.Register(api.Group("/resume"))

	return r
}
