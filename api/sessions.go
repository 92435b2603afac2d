package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/weiwang118/Wei-s-chatbot/domain"
)

// CreateSession creates a new chat session with a bot.
// POST /api/chat/create
func (h *Handler) CreateSession(c echo.Context) error {
	var req domain.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	session, err := h.svc.CreateSession(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// SendMessage submits a user turn and returns the bot's reply.
// POST /api/chat/send
func (h *Handler) SendMessage(c echo.Context) error {
	var req domain.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	resp, err := h.svc.SendMessage(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListSessions returns sessions sorted by last update.
// GET /api/chat/sessions?active_only=true
func (h *Handler) ListSessions(c echo.Context) error {
	activeOnly := true
	if raw := c.QueryParam("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid active_only"})
		}
		activeOnly = parsed
	}

	return c.JSON(http.StatusOK, h.svc.ListSessions(activeOnly))
}

// GetSession returns a specific session.
// GET /api/chat/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	session, err := h.svc.GetSession(c.Param("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// GetMessages returns one page of a session's history.
// GET /api/chat/sessions/:session_id/messages?limit=50&offset=0
func (h *Handler) GetMessages(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	resp, err := h.svc.GetMessages(c.Param("session_id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteSession removes a session.
// DELETE /api/chat/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	if err := h.svc.DeleteSession(c.Param("session_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Session deleted successfully"})
}

// ClearMessages empties a session's history.
// POST /api/chat/sessions/:session_id/clear
func (h *Handler) ClearMessages(c echo.Context) error {
	if err := h.svc.ClearMessages(c.Param("session_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Messages cleared successfully"})
}

// DeactivateSession marks a session inactive.
// POST /api/chat/sessions/:session_id/deactivate
func (h *Handler) DeactivateSession(c echo.Context) error {
	if err := h.svc.DeactivateSession(c.Param("session_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Session deactivated successfully"})
}
