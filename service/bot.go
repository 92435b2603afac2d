package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/weiwang118/Wei-s-chatbot/chai"
	"github.com/weiwang118/Wei-s-chatbot/domain"
)

// CreateBot resolves the personality prompt and stores a new bot template.
func (s *Service) CreateBot(req *domain.CreateBotRequest) (*domain.Bot, error) {
	prompt := chai.PersonalityPrompt(req.Personality, req.CustomTraits)
	if req.CustomPrompt != "" {
		prompt += "\n\n" + req.CustomPrompt
	}

	bot := &domain.Bot{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Personality:  req.Personality,
		Prompt:       prompt,
		CustomTraits: req.CustomTraits,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	if err := s.store.CreateBot(bot); err != nil {
		return nil, err
	}
	return bot, nil
}

// GetBot returns a single bot template.
func (s *Service) GetBot(botID string) (*domain.Bot, error) {
	return s.store.GetBot(botID)
}

// ListBots returns all bot templates.
func (s *Service) ListBots() []*domain.Bot {
	return s.store.ListBots()
}

// DeleteBot removes a bot template.
func (s *Service) DeleteBot(botID string) error {
	return s.store.DeleteBot(botID)
}
