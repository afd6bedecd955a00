package service

import (
	"context"
	"time"
)

// LocationSampleEvent carries one raw position sample to the background
// worker. The sample is already stored by the publishing side; the worker
// only runs an evaluation cycle for the member's owner.
type LocationSampleEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSampleEvent publishes a location sample for async processing
	PublishSampleEvent(ctx context.Context, event *LocationSampleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
