package domain

import "time"

// Bot is a reusable persona template. Sessions copy the resolved prompt at
// creation time, so later edits to a Bot never affect existing sessions.
type Bot struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Personality  PersonalityType `json:"personality"`
	Prompt       string          `json:"prompt"`
	CustomTraits []string        `json:"custom_traits,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	IsActive     bool            `json:"is_active"`
}
