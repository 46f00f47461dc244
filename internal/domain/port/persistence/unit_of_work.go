package persistence

import (
	"context"
)

// UnitOfWork coordinates the lookup / overlap-check / insert sequence of
// lock creation inside one database transaction, so two near-simultaneous
// creates on the same seat cannot both pass the overlap check.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetSeatRepository returns a seat repository bound to the current transaction
	GetSeatRepository(ctx context.Context) SeatRepository

	// GetSeatLockRepository returns a seat lock repository bound to the current transaction
	GetSeatLockRepository(ctx context.Context) SeatLockRepository
}
