package events

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
)

// NoopPublisher implements EventPublisher without a broker.
// Used when messaging is disabled in configuration.
type NoopPublisher struct{}

// NewNoopPublisher creates a new no-op publisher
func NewNoopPublisher() messaging.EventPublisher {
	return &NoopPublisher{}
}

// PublishLockEvent discards the event
func (p *NoopPublisher) PublishLockEvent(ctx context.Context, event messaging.LockEvent) error {
	return nil
}
