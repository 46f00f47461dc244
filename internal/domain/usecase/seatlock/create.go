package seatlock

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/overlap"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
)

// Create persists a new pending seat lock and arms its transitions.
// The seat lookup, overlap check and insert all run in one transaction
// with the seat row locked, so two concurrent creates on the same seat
// serialize and the second one sees the first one's lock.
func (s *Service) Create(ctx context.Context, req usecase.CreateLockRequest) (*entity.SeatLock, error) {
	lock, err := entity.NewSeatLock(req.SeatID, req.LockStart, req.ExpireTime, req.Reason, req.Type, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	seatRepo := s.uow.GetSeatRepository(txCtx)
	lockRepo := s.uow.GetSeatLockRepository(txCtx)

	if _, err := seatRepo.GetByIDForUpdate(txCtx, req.SeatID); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	pending, err := lockRepo.FindPendingBySeat(txCtx, req.SeatID)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	intervals := make([]overlap.Interval, 0, len(pending))
	for _, p := range pending {
		intervals = append(intervals, p.Window())
	}

	hasOverlap, err := overlap.HasOverlap(req.LockStart, req.ExpireTime, intervals)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	if hasOverlap {
		s.rollback(txCtx)
		s.logger.Warn("Reservation window overlaps a pending lock", map[string]any{
			"seat_id":     req.SeatID,
			"lock_start":  req.LockStart,
			"expire_time": req.ExpireTime,
		})
		return nil, errs.NewLockConflictError(req.SeatID, req.LockStart, req.ExpireTime)
	}

	if err := lockRepo.Create(txCtx, lock); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Seat lock created", map[string]any{
		"lock_id":     lock.ID,
		"seat_id":     lock.SeatID,
		"lock_start":  lock.LockStart,
		"expire_time": lock.ExpireTime,
		"type":        lock.Type,
	})
	s.publishEvent(ctx, messaging.LockCreated, lock)

	s.ScheduleStatusUpdate(lock.ID, lock.SeatID, lock.LockStart, lock.ExpireTime)

	return lock, nil
}

// rollback discards the transaction, logging the failure if any
func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to rollback lock creation", map[string]any{
			"error": err.Error(),
		})
	}
}
