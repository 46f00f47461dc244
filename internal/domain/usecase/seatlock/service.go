package seatlock

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
	"github.com/southernMD/railway-reservation/internal/domain/port/persistence"
)

// operation timeout for transitions fired from timers, which carry no caller context
const firedActionTimeout = 30 * coreport.Second

// Service implements the seat lock scheduling engine: it creates
// time-bounded locks, arms their activation/release transitions, and
// replays persisted state into timers after a restart.
type Service struct {
	lockRepo     persistence.SeatLockRepository
	seatRepo     persistence.SeatRepository
	uow          persistence.UnitOfWork
	scheduler    coreport.TaskScheduler
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	publisher    messaging.EventPublisher
}

// NewService creates a new seat lock service
func NewService(
	lockRepo persistence.SeatLockRepository,
	seatRepo persistence.SeatRepository,
	uow persistence.UnitOfWork,
	scheduler coreport.TaskScheduler,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	publisher messaging.EventPublisher,
) *Service {
	return &Service{
		lockRepo:     lockRepo,
		seatRepo:     seatRepo,
		uow:          uow,
		scheduler:    scheduler,
		timeProvider: timeProvider,
		logger:       logger,
		publisher:    publisher,
	}
}

// publishEvent pushes a lifecycle event, best effort
func (s *Service) publishEvent(ctx context.Context, kind string, lock *entity.SeatLock) {
	if s.publisher == nil {
		return
	}
	event := messaging.LockEvent{
		Kind:       kind,
		LockID:     lock.ID,
		SeatID:     lock.SeatID,
		LockStart:  lock.LockStart,
		ExpireTime: lock.ExpireTime,
		OccurredAt: s.timeProvider.Now(),
	}
	if err := s.publisher.PublishLockEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish lock event", map[string]any{
			"kind":    kind,
			"lock_id": lock.ID,
			"error":   err.Error(),
		})
	}
}
