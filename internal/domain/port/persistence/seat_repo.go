package persistence

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// SeatRepository reads seats and flips their occupancy projection.
// Seats themselves are managed by the surrounding booking application.
type SeatRepository interface {
	// GetByID retrieves a seat by ID
	//
	// Possible errors:
	// - ErrSeatNotFound: if the seat doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Seat, error)

	// GetByIDForUpdate retrieves a seat with a row-level lock. Must run
	// inside a unit-of-work transaction; serializes concurrent lock
	// creation on the same seat.
	//
	// Possible errors: same as GetByID
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Seat, error)

	// UpdateStatus flips the seat's occupancy status
	//
	// Possible errors:
	// - ErrSeatNotFound: if the seat vanished
	// - ErrDatabaseConnection: if the database is unreachable
	UpdateStatus(ctx context.Context, seatID uint64, status entity.SeatStatus) error

	// FindCandidates enumerates seats of the requested class on a train,
	// joining carriages through the train's model
	FindCandidates(ctx context.Context, trainID uint64, seatType int) ([]*entity.Seat, error)
}
