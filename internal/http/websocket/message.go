package websocket

import "github.com/google/uuid"

type socketMessageType int

const (
	Update socketMessageType = iota
	Welcome
)

// SocketMessage is one packet pushed down the gallery change feed. The
// server only ever sends: incoming frames from clients are discarded. A
// message with a Target is delivered to the matching client only (used
// for the welcome packet); without one it is broadcast to every client.
type SocketMessage struct {
	Title  string                 `json:"title"`
	Body   map[string]interface{} `json:"body"`
	Type   socketMessageType      `json:"type"`
	Target *uuid.UUID             `json:"-"`
}
