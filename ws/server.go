// Package ws provides the realtime chat channel: one persistent duplex
// WebSocket per session, feeding user turns into the orchestrator and
// streaming replies back.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/weiwang118/Wei-s-chatbot/domain"
	"github.com/weiwang118/Wei-s-chatbot/hub"
	"github.com/weiwang118/Wei-s-chatbot/service"
	"github.com/weiwang118/Wei-s-chatbot/store"
)

// Server handles realtime chat connections.
type Server struct {
	hub            *hub.Hub
	svc            *service.Service
	maxMessageSize int64
	upgrader       websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(h *hub.Hub, svc *service.Service, maxMessageSize int64) *Server {
	return &Server{
		hub:            h,
		svc:            svc,
		maxMessageSize: maxMessageSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleChat upgrades the connection and binds it to the session in the
// path. The channel serves that session alone for its lifetime.
// GET /ws/chat/:session_id
func (s *Server) HandleChat(c echo.Context) error {
	sessionID := c.Param("session_id")

	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("ERROR: failed to upgrade WebSocket: %v", err)
		return err
	}

	conn := hub.NewConnection(sessionID, ws)
	conn.SetReadLimit(s.maxMessageSize)
	s.hub.Register(conn)

	go s.readLoop(conn)
	return nil
}

// readLoop processes inbound units until the peer disconnects or an exchange
// fails. Either way the registration is released so nothing targets the
// channel afterwards.
func (s *Server) readLoop(conn *hub.Connection) {
	defer func() {
		s.hub.Unregister(conn)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WARN: websocket read error for session %s: %v", conn.SessionID, err)
			}
			return
		}

		var inbound InboundMessage
		if err := json.Unmarshal(data, &inbound); err != nil {
			conn.WriteJSON(ErrorMessage{Error: "invalid JSON message"})
			continue
		}

		req := domain.SendMessageRequest{SessionID: conn.SessionID, Message: inbound.Message}
		if err := req.Validate(); err != nil {
			conn.WriteJSON(ErrorMessage{Error: err.Error()})
			continue
		}

		resp, err := s.svc.SendMessage(context.Background(), conn.SessionID, req.Message)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				conn.WriteJSON(ErrorMessage{Error: "Session not found"})
				continue
			}
			log.Printf("ERROR: websocket exchange failed for session %s: %v", conn.SessionID, err)
			return
		}

		conn.WriteJSON(ReplyMessage{
			Sender:    resp.BotName,
			Message:   resp.Response,
			Timestamp: resp.Timestamp,
		})
	}
}
