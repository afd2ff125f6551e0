package hub

import (
	"time"

	"github.com/soar/padkeys/internal/guiio"
)

// Message types sent from server to client.
const (
	TypeFull = "full"
	TypeKeys = "keys"
)

// WSMessage represents a WebSocket message sent from server to client.
type WSMessage struct {
	Type      string           `json:"type"`             // Message type: "full" or "keys"
	Seq       int64            `json:"seq"`              // Sequence number for ordering
	Timestamp int64            `json:"timestamp"`        // Unix timestamp in milliseconds
	Data      *guiio.Frame     `json:"data,omitempty"`   // Held keys, backend flag and controllers for type "full"
	Events    []guiio.KeyEvent `json:"events,omitempty"` // Key transitions for type "keys"
}

// NewFullMessage creates a "full" type message containing the complete input state.
func NewFullMessage(seq int64, frame *guiio.Frame) *WSMessage {
	snapshot := *frame
	snapshot.Events = nil
	return &WSMessage{
		Type:      TypeFull,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      &snapshot,
	}
}

// NewKeysMessage creates a "keys" type message containing the key transitions of one frame.
func NewKeysMessage(seq int64, events []guiio.KeyEvent) *WSMessage {
	return &WSMessage{
		Type:      TypeKeys,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Events:    events,
	}
}

// ClientMessage represents a message sent from the client to the server.
type ClientMessage struct {
	Type string `json:"type"` // "sync" requests a full message
}
