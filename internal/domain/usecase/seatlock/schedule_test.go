package seatlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	coremocks "github.com/southernMD/railway-reservation/mocks/port/core"
	persistencemocks "github.com/southernMD/railway-reservation/mocks/port/persistence"
)

type scheduleFixture struct {
	lockRepo  *persistencemocks.MockSeatLockRepository
	seatRepo  *persistencemocks.MockSeatRepository
	scheduler *coremocks.MockTaskScheduler
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
	service   *Service
}

func newScheduleFixture(t *testing.T, now time.Time) *scheduleFixture {
	f := &scheduleFixture{
		lockRepo:  persistencemocks.NewMockSeatLockRepository(t),
		seatRepo:  persistencemocks.NewMockSeatRepository(t),
		scheduler: coremocks.NewMockTaskScheduler(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}
	f.time.EXPECT().Now().Return(now).Maybe()
	f.time.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		Return(context.Background(), context.CancelFunc(func() {})).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	uow := persistencemocks.NewMockUnitOfWork(t)
	f.service = NewService(f.lockRepo, f.seatRepo, uow, f.scheduler, f.time, f.logger, nil)
	return f
}

func TestScheduleStatusUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Future window arms both transitions without touching the store", func(t *testing.T) {
		f := newScheduleFixture(t, now)
		lockStart := now.Add(1 * time.Hour)
		expireTime := now.Add(3 * time.Hour)

		var armed []time.Time
		f.scheduler.EXPECT().Schedule(mock.Anything, mock.Anything).
			Run(func(runAt time.Time, task func()) {
				armed = append(armed, runAt)
			}).Times(2)

		f.service.ScheduleStatusUpdate(7, 42, lockStart, expireTime)

		require.Len(t, armed, 2)
		assert.Equal(t, lockStart, armed[0])
		assert.Equal(t, expireTime, armed[1])
	})

	t.Run("Window already begun activates the seat immediately", func(t *testing.T) {
		lockStart := now.Add(-1 * time.Hour)
		expireTime := now.Add(2 * time.Hour)
		f := newScheduleFixture(t, now)

		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(&entity.SeatLock{ID: 7, SeatID: 42, LockStart: lockStart, ExpireTime: expireTime, Finish: entity.LockPending}, nil).Once()
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(42), entity.SeatLocked).Return(nil).Once()
		f.scheduler.EXPECT().Schedule(expireTime, mock.Anything).Once()

		f.service.ScheduleStatusUpdate(7, 42, lockStart, expireTime)
	})

	t.Run("Window fully elapsed releases the lock immediately", func(t *testing.T) {
		lockStart := now.Add(-3 * time.Hour)
		expireTime := now.Add(-1 * time.Hour)
		f := newScheduleFixture(t, now)

		lock := &entity.SeatLock{ID: 7, SeatID: 42, LockStart: lockStart, ExpireTime: expireTime, Finish: entity.LockPending}
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(lock, nil).Once()
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(42), entity.SeatAvailable).Return(nil).Once()
		f.lockRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(l *entity.SeatLock) bool {
			return l.ID == 7 && l.Finish == entity.LockReleased
		})).Return(nil).Once()

		f.service.ScheduleStatusUpdate(7, 42, lockStart, expireTime)
	})

	t.Run("Transition on a finished lock is a no-op", func(t *testing.T) {
		lockStart := now.Add(-3 * time.Hour)
		expireTime := now.Add(-1 * time.Hour)
		f := newScheduleFixture(t, now)

		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(&entity.SeatLock{ID: 7, SeatID: 42, Finish: entity.LockCancelled}, nil).Once()

		f.service.ScheduleStatusUpdate(7, 42, lockStart, expireTime)

		f.seatRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Armed activation backs off after cancellation", func(t *testing.T) {
		lockStart := now.Add(1 * time.Hour)
		expireTime := now.Add(3 * time.Hour)
		f := newScheduleFixture(t, now)

		var tasks []func()
		f.scheduler.EXPECT().Schedule(mock.Anything, mock.Anything).
			Run(func(runAt time.Time, task func()) {
				tasks = append(tasks, task)
			}).Times(2)

		f.service.ScheduleStatusUpdate(7, 42, lockStart, expireTime)
		require.Len(t, tasks, 2)

		// the lock was cancelled before the activation timer fired
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(&entity.SeatLock{ID: 7, SeatID: 42, Finish: entity.LockCancelled}, nil).Once()

		tasks[0]()

		f.seatRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate release firing is idempotent", func(t *testing.T) {
		lockStart := now.Add(-2 * time.Hour)
		expireTime := now.Add(1 * time.Hour)
		f := newScheduleFixture(t, now)

		lock := &entity.SeatLock{ID: 7, SeatID: 42, LockStart: lockStart, ExpireTime: expireTime, Finish: entity.LockPending}

		var releaseTask func()
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(lock, nil).Times(3)
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(42), entity.SeatLocked).Return(nil).Once()
		f.scheduler.EXPECT().Schedule(expireTime, mock.Anything).
			Run(func(runAt time.Time, task func()) {
				releaseTask = task
			}).Once()

		f.service.ScheduleStatusUpdate(7, 42, lockStart, expireTime)
		require.NotNil(t, releaseTask)

		// first firing releases the lock
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(42), entity.SeatAvailable).Return(nil).Once()
		f.lockRepo.EXPECT().Update(mock.Anything, lock).Return(nil).Once()
		releaseTask()
		assert.Equal(t, entity.LockReleased, lock.Finish)

		// second firing sees the moved lifecycle flag and backs off
		releaseTask()
	})
}

func TestRecoverTasks(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Replays every pending lock through the arming logic", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		futureLock := &entity.SeatLock{
			ID: 1, SeatID: 10,
			LockStart:  now.Add(1 * time.Hour),
			ExpireTime: now.Add(2 * time.Hour),
			Finish:     entity.LockPending,
		}
		elapsedLock := &entity.SeatLock{
			ID: 2, SeatID: 20,
			LockStart:  now.Add(-4 * time.Hour),
			ExpireTime: now.Add(-2 * time.Hour),
			Finish:     entity.LockPending,
		}

		f.lockRepo.EXPECT().FindAllPending(mock.Anything).
			Return([]*entity.SeatLock{futureLock, elapsedLock}, nil).Once()

		// future lock arms both timers
		f.scheduler.EXPECT().Schedule(futureLock.LockStart, mock.Anything).Once()
		f.scheduler.EXPECT().Schedule(futureLock.ExpireTime, mock.Anything).Once()

		// elapsed lock is released on the spot, no timer survives a restart
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(elapsedLock, nil).Once()
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(20), entity.SeatAvailable).Return(nil).Once()
		f.lockRepo.EXPECT().Update(mock.Anything, elapsedLock).Return(nil).Once()

		err := f.service.RecoverTasks(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.LockReleased, elapsedLock.Finish)
	})

	t.Run("Store failure aborts recovery", func(t *testing.T) {
		f := newScheduleFixture(t, now)
		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		dbErr := errors.New("database unreachable")
		f.lockRepo.EXPECT().FindAllPending(mock.Anything).Return(nil, dbErr).Once()

		err := f.service.RecoverTasks(ctx)

		assert.Equal(t, dbErr, err)
	})
}
