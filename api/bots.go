package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weiwang118/Wei-s-chatbot/domain"
)

// CreateBot creates a new bot template with a resolved personality prompt.
// POST /api/chat/bots
func (h *Handler) CreateBot(c echo.Context) error {
	var req domain.CreateBotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	bot, err := h.svc.CreateBot(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bot)
}

// ListBots returns all bot templates.
// GET /api/chat/bots
func (h *Handler) ListBots(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListBots())
}

// GetBot returns a specific bot template.
// GET /api/chat/bots/:bot_id
func (h *Handler) GetBot(c echo.Context) error {
	bot, err := h.svc.GetBot(c.Param("bot_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bot)
}

// DeleteBot removes a bot template.
// DELETE /api/chat/bots/:bot_id
func (h *Handler) DeleteBot(c echo.Context) error {
	if err := h.svc.DeleteBot(c.Param("bot_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bot deleted successfully"})
}
