package events

import (
	"time"

	"github.com/princekumarofficial/media-service/internal/types"
	"github.com/princekumarofficial/media-service/internal/types/media"
)

// Publisher interface for publishing events
type Publisher interface {
	PublishMediaCreated(m media.Media)
	PublishMediaUpdated(m media.Media)
	PublishMediaDeleted(mediaID string)
}

// WebSocketHub interface for the WebSocket hub
type WebSocketHub interface {
	Broadcast(event *types.Event)
	ClientCount() int
}

// EventPublisher implements the Publisher interface
type EventPublisher struct {
	hub WebSocketHub
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(hub WebSocketHub) *EventPublisher {
	return &EventPublisher{
		hub: hub,
	}
}

func (p *EventPublisher) PublishMediaCreated(m media.Media) {
	p.publish(types.EventMediaCreated, m)
}

func (p *EventPublisher) PublishMediaUpdated(m media.Media) {
	p.publish(types.EventMediaUpdated, m)
}

func (p *EventPublisher) PublishMediaDeleted(mediaID string) {
	p.publish(types.EventMediaDeleted, &types.MediaDeletedEvent{
		MediaID:   mediaID,
		DeletedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *EventPublisher) publish(eventType types.EventType, data interface{}) {
	// Nobody is listening
	if p.hub.ClientCount() == 0 {
		return
	}

	p.hub.Broadcast(types.NewEvent(eventType, data))
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) PublishMediaCreated(media.Media) {}
func (NopPublisher) PublishMediaUpdated(media.Media) {}
func (NopPublisher) PublishMediaDeleted(string)      {}
