package usecase

import (
	"context"
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// CreateWaitingOrderRequest represents queued demand being registered
type CreateWaitingOrderRequest struct {
	UserID             uint64
	TrainID            uint64
	Date               time.Time
	DepartureStationID uint64
	ArrivalStationID   uint64
	SeatType           int
	PassengerCount     int
	ExpireTime         time.Time
}

// WaitingOrderUseCase defines waiting-order operations and the matcher sweep
type WaitingOrderUseCase interface {
	// CreateWaitingOrder registers new queued demand
	CreateWaitingOrder(ctx context.Context, req CreateWaitingOrderRequest) (*entity.WaitingOrder, error)

	// GetWaitingOrder retrieves one order
	//
	// Possible errors:
	// - ErrWaitingOrderNotFound: the order doesn't exist
	GetWaitingOrder(ctx context.Context, id uint64) (*entity.WaitingOrder, error)

	// GetUserWaitingOrders lists a user's orders
	GetUserWaitingOrders(ctx context.Context, userID uint64) ([]*entity.WaitingOrder, error)

	// CancelWaitingOrder withdraws a queued order
	CancelWaitingOrder(ctx context.Context, id uint64) error

	// ProcessWaitingOrders runs one matcher sweep over queued orders,
	// oldest first. Invoked periodically.
	ProcessWaitingOrders(ctx context.Context) error

	// ProcessExpiredOrders expires queued orders whose expire time passed
	ProcessExpiredOrders(ctx context.Context) error
}
