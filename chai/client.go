// Package chai provides the client for CHAI's chat endpoint. It builds the
// request payload, applies retry with backoff, classifies failures, and
// extracts the reply text.
package chai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "http://guanaco-submitter.guanaco-backend.k2.chaiverse.com"
	chatEndpoint    = "/endpoints/onsite/chat"
	defaultTimeout  = 30 * time.Second
	defaultMaxConns = 100
	defaultPerHost  = 30
)

// safetyPrompt is prepended to every outgoing prompt. Callers cannot opt out.
const safetyPrompt = `You are a helpful, harmless, and honest AI friend.
Always respond in a safe and appropriate manner. Be respectful and considerate in your responses.`

// Options configures a Client. Zero fields fall back to the documented
// endpoint defaults.
type Options struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	MaxConns        int
	MaxConnsPerHost int
	Retry           RetryPolicy
}

// Client is the CHAI chat endpoint client. It is stateless between calls and
// holds only the pooled connection transport, acquired at construction and
// released by Close.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      RetryPolicy
}

// NewClient creates a new CHAI client with its connection pool.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxConns == 0 {
		opts.MaxConns = defaultMaxConns
	}
	if opts.MaxConnsPerHost == 0 {
		opts.MaxConnsPerHost = defaultPerHost
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = DefaultRetryPolicy()
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxConns,
		MaxConnsPerHost:     opts.MaxConnsPerHost,
		MaxIdleConnsPerHost: opts.MaxConnsPerHost,
	}

	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		retry: opts.Retry,
	}
}

// Close releases the pooled connections. The client must not be used after.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ChatRequest is the conversation context forwarded to the endpoint.
type ChatRequest struct {
	Memory      string        `json:"memory"`
	Prompt      string        `json:"prompt"`
	BotName     string        `json:"bot_name"`
	UserName    string        `json:"user_name"`
	ChatHistory []HistoryTurn `json:"chat_history"`
}

// HistoryTurn is one prior turn in the outgoing history.
type HistoryTurn struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// ChatResult carries the extracted reply.
type ChatResult struct {
	Response  string    `json:"response"`
	BotName   string    `json:"bot_name"`
	Timestamp time.Time `json:"timestamp"`
}

// chatReply covers the reply field names the endpoint has been seen to use.
type chatReply struct {
	ModelOutput *string `json:"model_output"`
	Response    *string `json:"response"`
	Message     *string `json:"message"`
}

// SendMessage forwards the conversation context to the endpoint and returns
// the reply. If userMessage is non-empty it is appended to the outgoing
// history, so the endpoint sees the full context including the newest
// unanswered turn. Transport failures, timeouts and rate limits are retried
// under the client's policy; the identical request bytes are resent on each
// attempt.
func (c *Client) SendMessage(ctx context.Context, req *ChatRequest, userMessage string) (*ChatResult, error) {
	botName := req.BotName
	if botName == "" {
		botName = "Assistant"
	}
	userName := req.UserName
	if userName == "" {
		userName = "User"
	}

	history := make([]HistoryTurn, len(req.ChatHistory), len(req.ChatHistory)+1)
	copy(history, req.ChatHistory)
	if userMessage != "" {
		history = append(history, HistoryTurn{Sender: userName, Message: userMessage})
	}

	payload := ChatRequest{
		Memory:      req.Memory,
		Prompt:      preparePrompt(req.Prompt),
		BotName:     botName,
		UserName:    userName,
		ChatHistory: history,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var reply string
	err = c.retry.Do(ctx, func() error {
		var opErr error
		reply, opErr = c.doChat(ctx, body)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Response:  reply,
		BotName:   botName,
		Timestamp: time.Now().UTC(),
	}, nil
}

// doChat performs one round trip and classifies the outcome.
func (c *Client) doChat(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(respBody))
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return "", &AuthenticationError{Message: msg}
		case http.StatusTooManyRequests:
			return "", &RateLimitError{Message: msg}
		default:
			return "", &APIError{Status: resp.StatusCode, Message: msg}
		}
	}

	var parsed chatReply
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// Ordered fallback of reply field names; a missing reply is an empty
	// string, not an error.
	switch {
	case parsed.ModelOutput != nil:
		return *parsed.ModelOutput, nil
	case parsed.Response != nil:
		return *parsed.Response, nil
	case parsed.Message != nil:
		return *parsed.Message, nil
	}
	return "", nil
}

// preparePrompt prepends the safety preamble to the caller-supplied prompt.
func preparePrompt(prompt string) string {
	if prompt == "" {
		return safetyPrompt
	}
	return safetyPrompt + "\n\n" + prompt
}
