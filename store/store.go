// Package store owns the in-process mapping from identifiers to sessions
// and bot templates.
package store

import (
	"errors"

	"github.com/weiwang118/Wei-s-chatbot/domain"
)

var (
	// ErrSessionNotFound is returned when a session id has no entry.
	ErrSessionNotFound = errors.New("session not found")
	// ErrBotNotFound is returned when a bot id has no entry.
	ErrBotNotFound = errors.New("bot not found")
)

// Store defines session and bot template persistence. All state lives in
// process memory; the lifetime of the store equals the lifetime of the
// process.
type Store interface {
	// Session operations
	CreateSession(session *domain.Session) error
	GetSession(sessionID string) (*domain.Session, error)
	ListSessions(activeOnly bool) []*domain.Session
	UpdateSession(session *domain.Session) error
	DeleteSession(sessionID string) error

	// Bot template operations
	CreateBot(bot *domain.Bot) error
	GetBot(botID string) (*domain.Bot, error)
	ListBots() []*domain.Bot
	DeleteBot(botID string) error
}
