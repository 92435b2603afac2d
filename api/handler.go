// Package api provides the HTTP handlers for the chat relay.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weiwang118/Wei-s-chatbot/service"
)

// Handler handles HTTP requests.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat API
	e.POST("/api/chat/create", h.CreateSession)
	e.POST("/api/chat/send", h.SendMessage)
	e.GET("/api/chat/sessions", h.ListSessions)
	e.GET("/api/chat/sessions/:session_id", h.GetSession)
	e.GET("/api/chat/sessions/:session_id/messages", h.GetMessages)
	e.DELETE("/api/chat/sessions/:session_id", h.DeleteSession)
	e.POST("/api/chat/sessions/:session_id/clear", h.ClearMessages)
	e.POST("/api/chat/sessions/:session_id/deactivate", h.DeactivateSession)

	// Bot template API
	e.POST("/api/chat/bots", h.CreateBot)
	e.GET("/api/chat/bots", h.ListBots)
	e.GET("/api/chat/bots/:bot_id", h.GetBot)
	e.DELETE("/api/chat/bots/:bot_id", h.DeleteBot)

	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

// Root returns the service banner.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "CHAI Chat Interface API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"chat":   "/api/chat",
			"ws":     "/ws/chat/:session_id",
			"health": "/health",
		},
	})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
