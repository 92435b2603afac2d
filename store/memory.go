package store

import (
	"sort"
	"sync"

	"github.com/weiwang118/Wei-s-chatbot/domain"
)

// sessionEntry pairs a session with its insertion sequence so that List can
// break UpdatedAt ties in creation order.
type sessionEntry struct {
	session *domain.Session
	seq     uint64
}

// MemoryStore is the in-memory Store implementation. Single-key operations
// are O(1); ListSessions is O(n log n) due to sorting.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	bots     map[string]*botEntry
	nextSeq  uint64
}

type botEntry struct {
	bot *domain.Bot
	seq uint64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*sessionEntry),
		bots:     make(map[string]*botEntry),
	}
}

// CreateSession stores a new session.
func (s *MemoryStore) CreateSession(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	s.sessions[session.ID] = &sessionEntry{session: session, seq: s.nextSeq}
	return nil
}

// GetSession returns the session for the given id.
func (s *MemoryStore) GetSession(sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry.session, nil
}

// ListSessions returns sessions sorted by UpdatedAt descending, ties broken
// by insertion order. With activeOnly, deactivated sessions are skipped.
func (s *MemoryStore) ListSessions(activeOnly bool) []*domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*sessionEntry, 0, len(s.sessions))
	for _, entry := range s.sessions {
		if activeOnly && !entry.session.IsActive {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].session.UpdatedAt.Equal(entries[j].session.UpdatedAt) {
			return entries[i].seq < entries[j].seq
		}
		return entries[i].session.UpdatedAt.After(entries[j].session.UpdatedAt)
	})

	sessions := make([]*domain.Session, len(entries))
	for i, entry := range entries {
		sessions[i] = entry.session
	}
	return sessions
}

// UpdateSession writes back a mutated session.
func (s *MemoryStore) UpdateSession(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[session.ID]
	if !ok {
		return ErrSessionNotFound
	}
	entry.session = session
	return nil
}

// DeleteSession removes a session.
func (s *MemoryStore) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// CreateBot stores a new bot template.
func (s *MemoryStore) CreateBot(bot *domain.Bot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	s.bots[bot.ID] = &botEntry{bot: bot, seq: s.nextSeq}
	return nil
}

// GetBot returns the bot template for the given id.
func (s *MemoryStore) GetBot(botID string) (*domain.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.bots[botID]
	if !ok {
		return nil, ErrBotNotFound
	}
	return entry.bot, nil
}

// ListBots returns all bot templates in insertion order.
func (s *MemoryStore) ListBots() []*domain.Bot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*botEntry, 0, len(s.bots))
	for _, entry := range s.bots {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	bots := make([]*domain.Bot, len(entries))
	for i, entry := range entries {
		bots[i] = entry.bot
	}
	return bots
}

// DeleteBot removes a bot template.
func (s *MemoryStore) DeleteBot(botID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bots[botID]; !ok {
		return ErrBotNotFound
	}
	delete(s.bots, botID)
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
