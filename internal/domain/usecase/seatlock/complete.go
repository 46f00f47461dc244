package seatlock

import (
	"context"
	"errors"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
)

// Complete immediately finishes a lock and frees its seat, bypassing the
// armed timers; used for manual early release. The idempotence guard in
// the fired transitions makes any later timer firing a no-op. Unknown
// lock and vanished seat are soft failures returning (nil, nil).
func (s *Service) Complete(ctx context.Context, lockID uint64) (*entity.SeatLock, error) {
	lock, err := s.lockRepo.GetByID(ctx, lockID)
	if err != nil {
		if errors.Is(err, errs.ErrLockNotFound) {
			return nil, nil
		}
		return nil, err
	}

	lock.Release(s.timeProvider)
	if err := s.lockRepo.Update(ctx, lock); err != nil {
		return nil, err
	}

	if err := s.seatRepo.UpdateStatus(ctx, lock.SeatID, entity.SeatAvailable); err != nil {
		if errors.Is(err, errs.ErrSeatNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.logger.Info("Seat lock completed", map[string]any{
		"lock_id": lockID,
		"seat_id": lock.SeatID,
	})
	s.publishEvent(ctx, messaging.LockCompleted, lock)

	return lock, nil
}
