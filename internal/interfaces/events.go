package interfaces

import (
	"context"
	"time"
)

// EventType identifies a category of application event
type EventType string

const (
	// EventProjectCreated is published when a project is created or reset
	EventProjectCreated EventType = "project_created"
	// EventSourceIngested is published after a successful ingestion batch
	EventSourceIngested EventType = "source_ingested"
	// EventSynthesisGenerated is published when a synthesis report is built
	EventSynthesisGenerated EventType = "synthesis_generated"
)

// Event is a single application event with its payload
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

// EventHandler processes a published event
type EventHandler func(ctx context.Context, event Event) error

// EventService - pub/sub for application events
type EventService interface {
	Subscribe(eventType EventType, handler EventHandler) error
	Publish(ctx context.Context, event Event) error
	Close() error
}
