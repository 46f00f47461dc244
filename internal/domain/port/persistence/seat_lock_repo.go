package persistence

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// SeatLockRepository is the durable store of reservation windows.
// Lock rows are never deleted by the engine; lifecycle moves through the
// Finish flag only.
type SeatLockRepository interface {
	// Create persists a new lock and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: if the row violates a store constraint
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, lock *entity.SeatLock) error

	// GetByID retrieves a lock by its identifier
	//
	// Possible errors:
	// - ErrLockNotFound: if no lock with the ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.SeatLock, error)

	// Update persists lifecycle changes of an existing lock
	//
	// Possible errors:
	// - ErrLockNotFound: if the lock vanished
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, lock *entity.SeatLock) error

	// FindPendingBySeat returns every pending lock on one seat,
	// the input to the overlap check at creation time
	FindPendingBySeat(ctx context.Context, seatID uint64) ([]*entity.SeatLock, error)

	// FindAllPending returns every pending lock in the store.
	// Used only by boot-time recovery.
	FindAllPending(ctx context.Context) ([]*entity.SeatLock, error)
}
