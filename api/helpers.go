package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weiwang118/Wei-s-chatbot/domain"
	"github.com/weiwang118/Wei-s-chatbot/service"
	"github.com/weiwang118/Wei-s-chatbot/store"
)

// writeError maps a core error to a client-facing response. Gateway failures
// surface as internal errors after logging; the caller cannot remediate
// credential or quota problems.
func writeError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.Is(err, store.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	case errors.Is(err, store.ErrBotNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Bot not found"})
	case errors.Is(err, service.ErrSessionInactive):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Session is not active"})
	default:
		log.Printf("ERROR: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
