package service

import (
	"context"
	"time"
)

// CatalogEventType names what happened in the catalog.
type CatalogEventType string

const (
	// EventAssetListed is emitted after a user listing is persisted.
	EventAssetListed CatalogEventType = "asset.listed"
	// EventReservationRequested is emitted after a reservation or waitlist lead is captured.
	EventReservationRequested CatalogEventType = "reservation.requested"
)

// CatalogEvent represents an event to be processed by the concierge worker
type CatalogEvent struct {
	EventID       string           `json:"event_id"`
	Type          CatalogEventType `json:"type"`
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	AssetID       string           `json:"asset_id,omitempty"`
	ReservationID string           `json:"reservation_id,omitempty"`
	OwnerID       string           `json:"owner_id,omitempty"`
	Subject       string           `json:"subject"` // Human readable line for the follow-up task
	OccurredAt    time.Time        `json:"occurred_at"`
	Payload       map[string]any   `json:"payload,omitempty"`
}

// Attributes returns the message attributes used for filtering and tracing
func (e *CatalogEvent) Attributes() map[string]string {
	attributes := map[string]string{
		"event_id":   e.EventID,
		"event_type": string(e.Type),
	}
	if e.AssetID != "" {
		attributes["asset_id"] = e.AssetID
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a catalog event for async processing
	Publish(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
