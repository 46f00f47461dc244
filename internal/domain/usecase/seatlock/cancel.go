package seatlock

import (
	"context"
	"errors"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
)

// Cancel withdraws a lock. The seat status is left untouched: a lock
// cancelled before activation never locked the seat, and cancelling
// mid-window is a deliberate early release the caller reconciles itself.
// An unknown lock ID is a soft failure and returns (nil, nil).
func (s *Service) Cancel(ctx context.Context, lockID uint64) (*entity.SeatLock, error) {
	lock, err := s.lockRepo.GetByID(ctx, lockID)
	if err != nil {
		if errors.Is(err, errs.ErrLockNotFound) {
			return nil, nil
		}
		return nil, err
	}

	lock.Cancel(s.timeProvider)
	if err := s.lockRepo.Update(ctx, lock); err != nil {
		return nil, err
	}

	s.logger.Info("Seat lock cancelled", map[string]any{
		"lock_id": lockID,
		"seat_id": lock.SeatID,
	})
	s.publishEvent(ctx, messaging.LockCancelled, lock)

	return lock, nil
}
