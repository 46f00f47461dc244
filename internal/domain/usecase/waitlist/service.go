package waitlist

import (
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/persistence"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
)

// DefaultExpireLeadTime is how close to its window's start a queued order
// may get before it is considered stale and expired instead of retried.
const DefaultExpireLeadTime = coreport.Hour

// Service matches queued waiting orders against seats freed up since the
// original booking attempt, going through the same create/persist/
// schedule path as a direct reservation.
type Service struct {
	orderRepo      persistence.WaitingOrderRepository
	trainRepo      persistence.TrainRepository
	seatRepo       persistence.SeatRepository
	lockRepo       persistence.SeatLockRepository
	ticketRepo     persistence.TicketRepository
	seatLocks      usecase.SeatLockUseCase
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	expireLeadTime coreport.Duration
}

// NewService creates a new waiting-order service
func NewService(
	orderRepo persistence.WaitingOrderRepository,
	trainRepo persistence.TrainRepository,
	seatRepo persistence.SeatRepository,
	lockRepo persistence.SeatLockRepository,
	ticketRepo persistence.TicketRepository,
	seatLocks usecase.SeatLockUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	expireLeadTime coreport.Duration,
) *Service {
	if expireLeadTime <= 0 {
		expireLeadTime = DefaultExpireLeadTime
	}
	return &Service{
		orderRepo:      orderRepo,
		trainRepo:      trainRepo,
		seatRepo:       seatRepo,
		lockRepo:       lockRepo,
		ticketRepo:     ticketRepo,
		seatLocks:      seatLocks,
		timeProvider:   timeProvider,
		logger:         logger,
		expireLeadTime: expireLeadTime,
	}
}
