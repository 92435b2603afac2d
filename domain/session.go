// Package domain defines the core domain models for the chat relay.
package domain

import "time"

// Session represents one ongoing conversation between a user and a bot persona.
// The ID is immutable, the message history is append-only (bulk clears aside),
// and once IsActive goes false it never goes true again.
type Session struct {
	ID          string          `json:"id"`
	BotName     string          `json:"bot_name"`
	UserName    string          `json:"user_name"`
	Prompt      string          `json:"prompt"`
	Personality PersonalityType `json:"personality"`
	Messages    []Message       `json:"messages"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	IsActive    bool            `json:"is_active"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// Message represents a single turn in a session's history.
type Message struct {
	Sender    string         `json:"sender"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
