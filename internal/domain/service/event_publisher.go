package service

import (
	"context"
)

// SyncCompletedEvent is published after a user's calendar window has been
// reconciled into storage.
type SyncCompletedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Processed int    `json:"processed"` // Events written during the sync
	SyncedAt  string `json:"synced_at"` // RFC 3339 completion timestamp
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncCompleted publishes a sync completion event for async consumers
	PublishSyncCompleted(ctx context.Context, event *SyncCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
