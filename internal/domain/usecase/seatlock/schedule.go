package seatlock

import (
	"context"
	"errors"
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
)

// ScheduleStatusUpdate arms the activation and release transitions for a
// persisted lock. Idempotent: recovery calls it for every pending lock at
// boot, and callers that created a lock row themselves call it directly.
//
// Transitions that are already due fire synchronously, because no future
// timer would ever run them:
//   - a window that has begun but not ended activates the seat now
//   - a window that has fully elapsed releases the lock now
func (s *Service) ScheduleStatusUpdate(lockID, seatID uint64, lockStart, expireTime time.Time) {
	now := s.timeProvider.Now()
	startInPast := now.After(lockStart)
	expireInFuture := now.Before(expireTime)

	if startInPast && expireInFuture {
		s.activate(lockID, seatID)
	}

	if !startInPast {
		s.scheduler.Schedule(lockStart, func() {
			s.activate(lockID, seatID)
		})
	}

	if expireInFuture {
		s.scheduler.Schedule(expireTime, func() {
			s.release(lockID, seatID)
		})
	} else {
		s.release(lockID, seatID)
	}
}

// activate flips the seat to locked once the lock's window begins. The
// lock stays pending; only release moves the lifecycle flag. A lock that
// vanished or already transitioned makes this a silent no-op.
func (s *Service) activate(lockID, seatID uint64) {
	ctx, cancel := s.firedActionContext()
	defer cancel()

	lock, ok := s.pendingLock(ctx, lockID)
	if !ok {
		return
	}

	if err := s.seatRepo.UpdateStatus(ctx, seatID, entity.SeatLocked); err != nil {
		if errors.Is(err, errs.ErrSeatNotFound) {
			return
		}
		s.logger.Error("Failed to mark seat locked", map[string]any{
			"lock_id": lockID,
			"seat_id": seatID,
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("Seat lock activated", map[string]any{
		"lock_id": lockID,
		"seat_id": seatID,
	})
	s.publishEvent(ctx, messaging.LockActivated, lock)
}

// release frees the seat and finishes the lock once its window ends
func (s *Service) release(lockID, seatID uint64) {
	ctx, cancel := s.firedActionContext()
	defer cancel()

	lock, ok := s.pendingLock(ctx, lockID)
	if !ok {
		return
	}

	if err := s.seatRepo.UpdateStatus(ctx, seatID, entity.SeatAvailable); err != nil {
		if errors.Is(err, errs.ErrSeatNotFound) {
			return
		}
		s.logger.Error("Failed to mark seat available", map[string]any{
			"lock_id": lockID,
			"seat_id": seatID,
			"error":   err.Error(),
		})
		return
	}

	lock.Release(s.timeProvider)
	if err := s.lockRepo.Update(ctx, lock); err != nil {
		s.logger.Error("Failed to finish seat lock", map[string]any{
			"lock_id": lockID,
			"seat_id": seatID,
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("Seat lock released", map[string]any{
		"lock_id": lockID,
		"seat_id": seatID,
	})
	s.publishEvent(ctx, messaging.LockReleased, lock)
}

// pendingLock re-reads a lock and reports whether it still awaits its
// transitions. Guards fired timers against cancel/complete races: a
// duplicate or late firing sees the moved lifecycle flag and backs off.
func (s *Service) pendingLock(ctx context.Context, lockID uint64) (*entity.SeatLock, bool) {
	lock, err := s.lockRepo.GetByID(ctx, lockID)
	if err != nil {
		if !errors.Is(err, errs.ErrLockNotFound) {
			s.logger.Error("Failed to load seat lock for transition", map[string]any{
				"lock_id": lockID,
				"error":   err.Error(),
			})
		}
		return nil, false
	}
	if !lock.IsPending() {
		s.logger.Debug("Skipping transition on finished lock", map[string]any{
			"lock_id": lockID,
			"finish":  lock.Finish,
		})
		return nil, false
	}
	return lock, true
}

// firedActionContext builds the context for transitions fired from timers
func (s *Service) firedActionContext() (context.Context, context.CancelFunc) {
	return s.timeProvider.WithTimeout(context.Background(), firedActionTimeout)
}
