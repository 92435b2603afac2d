// Package service orchestrates conversations: it assembles history context,
// invokes the CHAI gateway, and mutates session state in the store.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/weiwang118/Wei-s-chatbot/chai"
	"github.com/weiwang118/Wei-s-chatbot/domain"
	"github.com/weiwang118/Wei-s-chatbot/store"
)

// ErrSessionInactive is returned when a turn is submitted to a deactivated
// session.
var ErrSessionInactive = errors.New("session is not active")

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

// Gateway is the outbound chat endpoint contract the service depends on.
type Gateway interface {
	SendMessage(ctx context.Context, req *chai.ChatRequest, userMessage string) (*chai.ChatResult, error)
}

// Ensure the CHAI client satisfies the gateway contract.
var _ Gateway = (*chai.Client)(nil)

// Service is the conversation orchestrator.
type Service struct {
	store   store.Store
	gateway Gateway
}

// New creates a Service on top of the given store and gateway.
func New(st store.Store, gateway Gateway) *Service {
	return &Service{store: st, gateway: gateway}
}

// CreateSession resolves the personality prompt and stores a new session
// with an empty history.
func (s *Service) CreateSession(req *domain.CreateSessionRequest) (*domain.Session, error) {
	prompt := chai.PersonalityPrompt(req.Personality, req.CustomTraits)
	if req.CustomPrompt != "" {
		prompt += "\n\n" + req.CustomPrompt
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:          uuid.New().String(),
		BotName:     req.BotName,
		UserName:    req.UserName,
		Prompt:      prompt,
		Personality: req.Personality,
		Messages:    []domain.Message{},
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}

	if err := s.store.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage submits a user turn: it forwards the session's history plus the
// new text to the gateway, appends the user and bot messages, and advances
// the session's UpdatedAt.
//
// Concurrent turns on the same session are not mutually excluded across the
// gateway round trip; history ordering between them is unspecified.
func (s *Service) SendMessage(ctx context.Context, sessionID, text string) (*domain.ChatResponse, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return nil, ErrSessionInactive
	}

	history := make([]chai.HistoryTurn, len(session.Messages))
	for i, msg := range session.Messages {
		history[i] = chai.HistoryTurn{Sender: msg.Sender, Message: msg.Content}
	}

	result, err := s.gateway.SendMessage(ctx, &chai.ChatRequest{
		Prompt:      session.Prompt,
		BotName:     session.BotName,
		UserName:    session.UserName,
		ChatHistory: history,
	}, text)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session.Messages = append(session.Messages,
		domain.Message{Sender: session.UserName, Content: text, Timestamp: now},
		domain.Message{Sender: session.BotName, Content: result.Response, Timestamp: result.Timestamp},
	)
	session.UpdatedAt = now

	if err := s.store.UpdateSession(session); err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		Response:  result.Response,
		BotName:   session.BotName,
		Timestamp: result.Timestamp,
		SessionID: session.ID,
	}, nil
}

// GetSession returns a single session.
func (s *Service) GetSession(sessionID string) (*domain.Session, error) {
	return s.store.GetSession(sessionID)
}

// ListSessions returns sessions sorted by UpdatedAt descending.
func (s *Service) ListSessions(activeOnly bool) *domain.SessionListResponse {
	sessions := s.store.ListSessions(activeOnly)
	return &domain.SessionListResponse{Sessions: sessions, Total: len(sessions)}
}

// GetMessages returns one page of a session's history plus the total count.
// The limit defaults to 50 and is capped at 200; the offset is clamped to 0.
func (s *Service) GetMessages(sessionID string, limit, offset int) (*domain.MessageListResponse, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	if offset < 0 {
		offset = 0
	}

	total := len(session.Messages)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]domain.Message, end-offset)
	copy(page, session.Messages[offset:end])

	return &domain.MessageListResponse{
		Messages:  page,
		SessionID: sessionID,
		Total:     total,
	}, nil
}

// DeleteSession removes a session.
func (s *Service) DeleteSession(sessionID string) error {
	return s.store.DeleteSession(sessionID)
}

// ClearMessages empties a session's history. The active flag is unchanged.
func (s *Service) ClearMessages(sessionID string) error {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return err
	}

	session.Messages = []domain.Message{}
	session.UpdatedAt = time.Now().UTC()
	return s.store.UpdateSession(session)
}

// DeactivateSession marks a session inactive. Deactivation is terminal and
// idempotent: repeated calls leave the session deactivated without error.
func (s *Service) DeactivateSession(sessionID string) error {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return err
	}

	session.IsActive = false
	session.UpdatedAt = time.Now().UTC()
	return s.store.UpdateSession(session)
}
