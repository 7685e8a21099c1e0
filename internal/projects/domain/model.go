package domain

import "time"

// Project represents a single portfolio entry. JSON keys follow the client's
// camelCase convention. The identifier is immutable once assigned.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"techStack"`
	GithubURL   string    `json:"githubUrl"`
	LiveURL     string    `json:"liveUrl"`
	ImageURL    string    `json:"imageUrl"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProject is the create input; title and description are required.
type CreateProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

// UpdateProject carries a partial field set; nil means "leave unchanged".
type UpdateProject struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubURL   *string  `json:"githubUrl"`
	LiveURL     *string  `json:"liveUrl"`
	ImageURL    *string  `json:"imageUrl"`
	Featured    *bool    `json:"featured"`
}
