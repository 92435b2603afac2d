package ws

import "time"

// InboundMessage is the unit a client sends over the realtime channel.
type InboundMessage struct {
	Message string `json:"message"`
}

// ReplyMessage is the unit sent back after a successful exchange.
type ReplyMessage struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorMessage is the unit sent when an inbound unit cannot be processed.
type ErrorMessage struct {
	Error string `json:"error"`
}
