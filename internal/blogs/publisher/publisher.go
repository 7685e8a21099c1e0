// Package publisher runs the scheduled-publishing job: posts saved with a
// future publish_at go live without anyone touching the dashboard.
package publisher

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/devfolio/portfolio-backend/internal/blogs/repository"
)

type Publisher struct {
	cron *cron.Cron
	repo *repository.Repo
}

func New(repo *repository.Repo) *Publisher {
	return &Publisher{cron: cron.New(), repo: repo}
}

// Start schedules the publish sweep once a minute.
func (p *Publisher) Start() {
	_, err := p.cron.AddFunc("* * * * *", p.publishDue)
	if err != nil {
		log.Printf("Failed to create publish cron job: %v", err)
		return
	}

	log.Println("Blog publish scheduler started (sweeping every minute)")
	p.cron.Start()
}

// Stop waits for a running sweep to finish.
func (p *Publisher) Stop() {
	<-p.cron.Stop().Done()
}

func (p *Publisher) publishDue() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := p.repo.PublishDue(ctx, time.Now())
	if err != nil {
		log.Printf("Publish sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Published %d scheduled blog post(s)", n)
	}
}
