package domain

import "time"

// Author is the display identity attached to a post. It is a weak reference:
// when the user behind it is gone, the post simply carries no author.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Blog is one post. Content is stored as the editor's HTML.
type Blog struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Summary    string     `json:"summary"`
	CoverImage string     `json:"coverImage"`
	Tags       []string   `json:"tags"`
	Published  bool       `json:"published"`
	PublishAt  *time.Time `json:"publishAt,omitempty"`
	Author     *Author    `json:"author,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CreateBlog is the create input; title and content are required. The author
// is taken from the session, never from the body.
type CreateBlog struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Summary    string     `json:"summary"`
	CoverImage string     `json:"coverImage"`
	Tags       []string   `json:"tags"`
	Published  bool       `json:"published"`
	PublishAt  *time.Time `json:"publishAt"`
}

// UpdateBlog carries a partial field set; nil means "leave unchanged".
type UpdateBlog struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	Summary    *string    `json:"summary"`
	CoverImage *string    `json:"coverImage"`
	Tags       []string   `json:"tags"`
	Published  *bool      `json:"published"`
	PublishAt  *time.Time `json:"publishAt"`
}
