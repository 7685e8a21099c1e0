package domain

import "time"

// Message is one contact-form submission. After creation the only mutation
// allowed is flipping the read flag.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMessage is the public submission input; all three fields are required.
type NewMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MarkRead is the (empty) update input: the PATCH route sets read=true and
// accepts nothing else.
type MarkRead struct{}
