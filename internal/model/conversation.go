package model

import "time"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatTurn struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is an assistant session. Turns are kept in order; only the
// tail is sent to the completion API.
type Conversation struct {
	ID        string     `json:"id"`
	Turns     []ChatTurn `json:"turns"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Reply is the result of sending one user turn. Fallback is set when the
// completion API failed and a canned reply was appended instead.
type Reply struct {
	Conversation Conversation `json:"conversation"`
	Turn         ChatTurn     `json:"turn"`
	Fallback     bool         `json:"fallback"`
	Error        string       `json:"error,omitempty"`
}
