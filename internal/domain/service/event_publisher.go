package service

import (
	"context"
	"time"
)

// LocationActivatedEvent is emitted when a marker on a delivery map is activated.
// Location carries the full location object, unknown fields included.
type LocationActivatedEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	EventID     string         `json:"event_id"`
	DeliveryID  string         `json:"delivery_id"`
	SnapshotID  string         `json:"snapshot_id"`
	LocationID  string         `json:"location_id"`
	Location    map[string]any `json:"location"`
	ActivatedAt time.Time      `json:"activated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationActivated publishes a marker activation
	PublishLocationActivated(ctx context.Context, event *LocationActivatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
