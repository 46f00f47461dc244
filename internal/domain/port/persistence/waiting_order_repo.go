package persistence

import (
	"context"
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// WaitingOrderRepository stores queued demand for the matcher
type WaitingOrderRepository interface {
	// Create persists a new waiting order and assigns its ID
	Create(ctx context.Context, order *entity.WaitingOrder) error

	// GetByID retrieves a waiting order
	//
	// Possible errors:
	// - ErrWaitingOrderNotFound: if the order doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.WaitingOrder, error)

	// Update persists status changes of an existing order
	Update(ctx context.Context, order *entity.WaitingOrder) error

	// FindByUser returns all orders a user has placed
	FindByUser(ctx context.Context, userID uint64) ([]*entity.WaitingOrder, error)

	// FindQueuedOldestFirst returns queued orders ordered by creation
	// time ascending, the FIFO input of the matcher sweep
	FindQueuedOldestFirst(ctx context.Context) ([]*entity.WaitingOrder, error)

	// FindQueuedExpiredBefore returns queued orders whose expire time has
	// already passed the given instant
	FindQueuedExpiredBefore(ctx context.Context, t time.Time) ([]*entity.WaitingOrder, error)
}
