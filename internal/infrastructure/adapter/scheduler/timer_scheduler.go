package scheduler

import (
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/port/core"
)

// TimerScheduler implements TaskScheduler on top of runtime timers.
// Armed tasks live in process memory only; boot recovery replays them
// from the lock store after a restart.
type TimerScheduler struct {
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewTimerScheduler creates a new timer-backed scheduler
func NewTimerScheduler(timeProvider core.TimeProvider, logger core.Logger) core.TaskScheduler {
	return &TimerScheduler{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Schedule fires task at or after runAt. Arming an instant that already
// passed is a no-op; callers run overdue work synchronously themselves.
func (s *TimerScheduler) Schedule(runAt time.Time, task func()) {
	delay := s.timeProvider.Until(runAt).Std()
	if delay <= 0 {
		s.logger.Debug("Skipping timer for elapsed instant", map[string]any{
			"run_at": runAt,
		})
		return
	}

	s.logger.Debug("Arming timer", map[string]any{
		"run_at":   runAt,
		"delay_ms": delay.Milliseconds(),
	})

	time.AfterFunc(delay, task)
}
