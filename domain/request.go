package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxNameLen    = 50
	maxMessageLen = 2000
)

// ValidationError reports a rejected request field. It is surfaced to the
// client as a bad request before any core operation runs.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CreateSessionRequest is the payload for creating a chat session.
type CreateSessionRequest struct {
	BotName      string          `json:"bot_name"`
	UserName     string          `json:"user_name"`
	Personality  PersonalityType `json:"personality"`
	CustomPrompt string          `json:"custom_prompt,omitempty"`
	CustomTraits []string        `json:"custom_traits,omitempty"`
}

// Validate trims and bounds the user-supplied names.
func (r *CreateSessionRequest) Validate() error {
	var err error
	if r.BotName, err = validateName("bot_name", r.BotName); err != nil {
		return err
	}
	if r.UserName, err = validateName("user_name", r.UserName); err != nil {
		return err
	}
	return nil
}

// SendMessageRequest is the payload for submitting a user turn.
type SendMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Validate trims and bounds the message text.
func (r *SendMessageRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return &ValidationError{Field: "message", Reason: "cannot be empty"}
	}
	if len(r.Message) > maxMessageLen {
		return &ValidationError{Field: "message", Reason: fmt.Sprintf("cannot exceed %d characters", maxMessageLen)}
	}
	return nil
}

// CreateBotRequest is the payload for creating a bot template.
type CreateBotRequest struct {
	Name         string          `json:"name"`
	Personality  PersonalityType `json:"personality"`
	CustomPrompt string          `json:"custom_prompt,omitempty"`
	CustomTraits []string        `json:"custom_traits,omitempty"`
}

// Validate trims and bounds the bot name.
func (r *CreateBotRequest) Validate() error {
	var err error
	r.Name, err = validateName("name", r.Name)
	return err
}

func validateName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	if len(value) > maxNameLen {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("cannot exceed %d characters", maxNameLen)}
	}
	return value, nil
}

// ChatResponse is returned to the caller after a successful exchange.
type ChatResponse struct {
	Response  string    `json:"response"`
	BotName   string    `json:"bot_name"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

// SessionListResponse wraps a sorted page of sessions.
type SessionListResponse struct {
	Sessions []*Session `json:"sessions"`
	Total    int        `json:"total"`
}

// MessageListResponse wraps one page of a session's history.
type MessageListResponse struct {
	Messages  []Message `json:"messages"`
	SessionID string    `json:"session_id"`
	Total     int       `json:"total"`
}
