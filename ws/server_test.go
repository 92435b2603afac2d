package ws_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiwang118/Wei-s-chatbot/chai"
	"github.com/weiwang118/Wei-s-chatbot/domain"
	"github.com/weiwang118/Wei-s-chatbot/hub"
	"github.com/weiwang118/Wei-s-chatbot/service"
	"github.com/weiwang118/Wei-s-chatbot/store"
	"github.com/weiwang118/Wei-s-chatbot/ws"
)

type fakeGateway struct {
	reply string
	err   error
}

func (f *fakeGateway) SendMessage(ctx context.Context, req *chai.ChatRequest, userMessage string) (*chai.ChatResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &chai.ChatResult{Response: f.reply, BotName: req.BotName, Timestamp: time.Now().UTC()}, nil
}

type wsFixture struct {
	server *httptest.Server
	svc    *service.Service
	hub    *hub.Hub
	gw     *fakeGateway
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()

	gw := &fakeGateway{reply: "hello there!"}
	svc := service.New(store.NewMemoryStore(), gw)
	h := hub.NewHub()
	wsServer := ws.NewServer(h, svc, 65536)

	e := echo.New()
	e.GET("/ws/chat/:session_id", wsServer.HandleChat)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &wsFixture{server: server, svc: svc, hub: h, gw: gw}
}

func (f *wsFixture) dial(t *testing.T, sessionID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/chat/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func (f *wsFixture) createSession(t *testing.T) *domain.Session {
	t.Helper()

	session, err := f.svc.CreateSession(&domain.CreateSessionRequest{
		BotName: "Nova", UserName: "Ann", Personality: domain.PersonalityFriendly,
	})
	require.NoError(t, err)
	return session
}

func TestChatExchange(t *testing.T) {
	f := newWSFixture(t)
	session := f.createSession(t)
	conn := f.dial(t, session.ID)

	require.NoError(t, conn.WriteJSON(ws.InboundMessage{Message: "Hello"}))

	var reply ws.ReplyMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "Nova", reply.Sender)
	assert.Equal(t, "hello there!", reply.Message)
	assert.False(t, reply.Timestamp.IsZero())

	got, err := f.svc.GetSession(session.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "Ann", got.Messages[0].Sender)
	assert.Equal(t, "Nova", got.Messages[1].Sender)
}

func TestChatUnknownSessionKeepsChannelOpen(t *testing.T) {
	f := newWSFixture(t)
	conn := f.dial(t, "missing")

	require.NoError(t, conn.WriteJSON(ws.InboundMessage{Message: "Hello"}))

	var errUnit ws.ErrorMessage
	require.NoError(t, conn.ReadJSON(&errUnit))
	assert.Equal(t, "Session not found", errUnit.Error)

	// A lookup failure must not kill the channel.
	require.NoError(t, conn.WriteJSON(ws.InboundMessage{Message: "Still there?"}))
	require.NoError(t, conn.ReadJSON(&errUnit))
	assert.Equal(t, "Session not found", errUnit.Error)
}

func TestChatInvalidPayloadKeepsChannelOpen(t *testing.T) {
	f := newWSFixture(t)
	session := f.createSession(t)
	conn := f.dial(t, session.ID)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	var errUnit ws.ErrorMessage
	require.NoError(t, conn.ReadJSON(&errUnit))
	assert.Equal(t, "invalid JSON message", errUnit.Error)

	require.NoError(t, conn.WriteJSON(ws.InboundMessage{Message: "   "}))
	require.NoError(t, conn.ReadJSON(&errUnit))
	assert.Contains(t, errUnit.Error, "message")

	// The channel still serves well-formed units afterwards.
	require.NoError(t, conn.WriteJSON(ws.InboundMessage{Message: "Hello"}))
	var reply ws.ReplyMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "hello there!", reply.Message)
}

func TestChatExchangeFailureClosesChannel(t *testing.T) {
	f := newWSFixture(t)
	f.gw.err = errors.New("upstream down")
	session := f.createSession(t)
	conn := f.dial(t, session.ID)

	require.NoError(t, conn.WriteJSON(ws.InboundMessage{Message: "Hello"}))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var reply ws.ReplyMessage
	err := conn.ReadJSON(&reply)
	require.Error(t, err)

	// The registration is released once the loop exits.
	deadline := time.Now().Add(time.Second)
	for f.hub.ConnectionCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("connection still registered after channel close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestChatConnectionReplacement(t *testing.T) {
	f := newWSFixture(t)
	session := f.createSession(t)

	first := f.dial(t, session.ID)
	_ = first

	second := f.dial(t, session.ID)

	// The newest channel owns the session binding.
	require.NoError(t, second.WriteJSON(ws.InboundMessage{Message: "Hello"}))
	var reply ws.ReplyMessage
	require.NoError(t, second.ReadJSON(&reply))
	assert.Equal(t, "hello there!", reply.Message)
	assert.Equal(t, 1, f.hub.ConnectionCount())
}
