package chai

import "fmt"

// AuthenticationError indicates the endpoint rejected the API key (HTTP 401).
// It is never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "chai: invalid API key: " + e.Message
}

// RateLimitError indicates the endpoint throttled the request (HTTP 429).
// Rate limits are retried under the backoff policy since quota may clear
// within the retry window.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return "chai: rate limit exceeded: " + e.Message
}

// APIError is any other unsuccessful response from the endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chai: API error [%d]: %s", e.Status, e.Message)
}
