package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/portfolio-backend/config"
	authrepo "github.com/devfolio/portfolio-backend/internal/auth/repository"
	"github.com/devfolio/portfolio-backend/internal/auth/service"
	"github.com/devfolio/portfolio-backend/internal/blogs/publisher"
	blogsrepo "github.com/devfolio/portfolio-backend/internal/blogs/repository"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/storage/postgres"
	"github.com/devfolio/portfolio-backend/internal/storage/redisdb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	rdb, err := redisdb.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("redis connect failed: %v", err)
	}
	defer rdb.Close()

	if err := seedAdmin(ctx, db, cfg); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	pub := publisher.New(blogsrepo.NewRepo(db))
	pub.Start()
	defer pub.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "portfolio-backend",
		Version:      cfg.App.Version,
		DB:           db,
		Redis:        rdb,
		ClientOrigin: cfg.Client.Origin,
		ResumeURL:    cfg.Resume.ServiceURL,
		SessionTTL:   cfg.Auth.SessionTTL,
		CookieName:   cfg.Auth.CookieName,
		CookieSecure: cfg.Production(),
		LoginLimit:   cfg.Auth.LoginLimit,
		LoginWindow:  cfg.Auth.LoginWindow,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // the resume proxy can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// seedAdmin makes sure the configured admin account exists so a fresh
// deployment can log in. Skipped when ADMIN_EMAIL is unset.
func seedAdmin(ctx context.Context, db *sql.DB, cfg *config.Config) error {
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	hash, err := service.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}

	users := authrepo.NewUserRepository(db)
	return users.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, hash)
}
