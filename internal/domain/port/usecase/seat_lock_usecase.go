package usecase

import (
	"context"
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// CreateLockRequest represents an incoming seat reservation request
type CreateLockRequest struct {
	SeatID     uint64
	LockStart  time.Time
	ExpireTime time.Time
	Reason     string
	Type       entity.LockType
}

// SeatLockUseCase defines the scheduling engine's lock operations
type SeatLockUseCase interface {
	// Create persists a new pending lock after overlap-checking the window
	// against the seat's other pending locks, then arms the activation and
	// release transitions.
	//
	// Possible errors:
	// - ErrSeatNotFound: the referenced seat doesn't exist
	// - ErrLockConflict: the window overlaps a pending lock on the seat
	// - ErrInvalidInterval: the window is inverted or malformed
	Create(ctx context.Context, req CreateLockRequest) (*entity.SeatLock, error)

	// Cancel withdraws a pending lock without touching the seat status.
	// Returns (nil, nil) when the lock doesn't exist - a soft failure.
	Cancel(ctx context.Context, lockID uint64) (*entity.SeatLock, error)

	// Complete forces immediate release of a lock and frees the seat,
	// bypassing the armed timers. Returns (nil, nil) when the lock or its
	// seat doesn't exist.
	Complete(ctx context.Context, lockID uint64) (*entity.SeatLock, error)

	// ScheduleStatusUpdate arms (or immediately fires) the activation and
	// release transitions for an already-persisted lock. Idempotent; also
	// the replay primitive used by recovery and by callers that created a
	// lock row themselves.
	ScheduleStatusUpdate(lockID, seatID uint64, lockStart, expireTime time.Time)

	// RecoverTasks replays every pending lock from the store into the
	// scheduler. Runs once at process start, before any concurrent access.
	RecoverTasks(ctx context.Context) error
}
