package seatlock

import (
	"context"
)

// RecoverTasks replays every pending lock from the store into the
// scheduler. A process restart wipes the in-memory timer set; the
// persisted lockStart/expireTime/finish columns are enough to rederive
// it, with transitions that were missed while the process was down
// firing immediately through the arming logic.
//
// Must complete before the create endpoint and the matcher start, so a
// fresh request can't supersede a timer this pass is about to arm.
func (s *Service) RecoverTasks(ctx context.Context) error {
	locks, err := s.lockRepo.FindAllPending(ctx)
	if err != nil {
		s.logger.Error("Failed to load pending locks for recovery", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, lock := range locks {
		s.ScheduleStatusUpdate(lock.ID, lock.SeatID, lock.LockStart, lock.ExpireTime)
	}

	s.logger.Info("Pending seat locks recovered", map[string]any{
		"count": len(locks),
	})
	return nil
}
