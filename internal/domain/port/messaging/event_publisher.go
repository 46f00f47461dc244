package messaging

import (
	"context"
	"time"
)

// Lock event kinds
const (
	LockCreated   = "lock.created"
	LockActivated = "lock.activated"
	LockReleased  = "lock.released"
	LockCancelled = "lock.cancelled"
	LockCompleted = "lock.completed"
)

// LockEvent describes one lifecycle transition of a seat lock
type LockEvent struct {
	Kind       string    `json:"kind"`
	LockID     uint64    `json:"lockId"`
	SeatID     uint64    `json:"seatId"`
	LockStart  time.Time `json:"lockStart"`
	ExpireTime time.Time `json:"expireTime"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher pushes lock lifecycle events to interested consumers
// (notifications, audit). Publishing is best effort: callers log failures
// and move on, the engine's own state never depends on delivery.
type EventPublisher interface {
	PublishLockEvent(ctx context.Context, event LockEvent) error
}
