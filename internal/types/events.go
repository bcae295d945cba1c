package types

import "time"

// EventType represents the type of real-time event
type EventType string

const (
	EventMediaCreated EventType = "media.created"
	EventMediaUpdated EventType = "media.updated"
	EventMediaDeleted EventType = "media.deleted"
)

// Event represents a real-time event that can be sent over WebSocket
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// MediaDeletedEvent carries the identifier of a removed media entry
type MediaDeletedEvent struct {
	MediaID   string `json:"media_id"`
	DeletedAt string `json:"deleted_at"`
}

// NewEvent creates a new event with the current timestamp
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
