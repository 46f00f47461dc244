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
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
	coremocks "github.com/southernMD/railway-reservation/mocks/port/core"
	persistencemocks "github.com/southernMD/railway-reservation/mocks/port/persistence"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	lockStart := fixedTime.Add(2 * time.Hour)
	expireTime := fixedTime.Add(4 * time.Hour)

	request := usecase.CreateLockRequest{
		SeatID:     42,
		LockStart:  lockStart,
		ExpireTime: expireTime,
		Reason:     "direct booking",
		Type:       entity.LockTypePurchase,
	}

	t.Run("Successful creation with disjoint pending lock", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockTxLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		txCtx := context.Background()
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetSeatRepository(mock.Anything).Return(mockTxSeatRepo).Once()
		mockUow.EXPECT().GetSeatLockRepository(mock.Anything).Return(mockTxLockRepo).Once()
		mockTxSeatRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(42)).
			Return(&entity.Seat{ID: 42, Status: entity.SeatAvailable}, nil).Once()
		mockTxLockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(42)).
			Return([]*entity.SeatLock{
				{ID: 1, SeatID: 42, LockStart: fixedTime.Add(-3 * time.Hour), ExpireTime: fixedTime.Add(-1 * time.Hour)},
			}, nil).Once()
		mockTxLockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(lock *entity.SeatLock) bool {
			return lock.SeatID == 42 && lock.IsPending() && lock.Type == entity.LockTypePurchase
		})).Run(func(ctx context.Context, lock *entity.SeatLock) {
			lock.ID = 99
		}).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		// future window arms both transitions
		mockScheduler.EXPECT().Schedule(lockStart, mock.Anything).Once()
		mockScheduler.EXPECT().Schedule(expireTime, mock.Anything).Once()

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, request)

		require.NoError(t, err)
		require.NotNil(t, lock)
		assert.Equal(t, uint64(99), lock.ID)
		assert.Equal(t, uint64(42), lock.SeatID)
		assert.True(t, lock.IsPending())
	})

	t.Run("Overlapping window is rejected", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockTxLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		txCtx := context.Background()
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetSeatRepository(mock.Anything).Return(mockTxSeatRepo).Once()
		mockUow.EXPECT().GetSeatLockRepository(mock.Anything).Return(mockTxLockRepo).Once()
		mockTxSeatRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(42)).
			Return(&entity.Seat{ID: 42}, nil).Once()
		mockTxLockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(42)).
			Return([]*entity.SeatLock{
				{ID: 1, SeatID: 42, LockStart: fixedTime.Add(3 * time.Hour), ExpireTime: fixedTime.Add(5 * time.Hour)},
			}, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, request)

		assert.Nil(t, lock)
		require.Error(t, err)
		assert.True(t, errs.IsLockConflictError(err))
	})

	t.Run("Touching windows conflict", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockTxLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		txCtx := context.Background()
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetSeatRepository(mock.Anything).Return(mockTxSeatRepo).Once()
		mockUow.EXPECT().GetSeatLockRepository(mock.Anything).Return(mockTxLockRepo).Once()
		mockTxSeatRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(42)).
			Return(&entity.Seat{ID: 42}, nil).Once()
		// the existing window ends exactly where the request begins
		mockTxLockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(42)).
			Return([]*entity.SeatLock{
				{ID: 1, SeatID: 42, LockStart: fixedTime, ExpireTime: lockStart},
			}, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, request)

		assert.Nil(t, lock)
		assert.True(t, errs.IsLockConflictError(err))
	})

	t.Run("Unknown seat", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockTxLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.Background()
		mockUow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		mockUow.EXPECT().GetSeatRepository(mock.Anything).Return(mockTxSeatRepo).Once()
		mockUow.EXPECT().GetSeatLockRepository(mock.Anything).Return(mockTxLockRepo).Once()
		mockTxSeatRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(42)).
			Return(nil, errs.ErrSeatNotFound).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, request)

		assert.Nil(t, lock)
		assert.ErrorIs(t, err, errs.ErrSeatNotFound)
	})

	t.Run("Inverted window never reaches the store", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, usecase.CreateLockRequest{
			SeatID:     42,
			LockStart:  expireTime,
			ExpireTime: lockStart,
		})

		assert.Nil(t, lock)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Zero seat ID never reaches the store", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, usecase.CreateLockRequest{
			SeatID:     0,
			LockStart:  lockStart,
			ExpireTime: expireTime,
		})

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidSeatID, err)
	})

	t.Run("Transaction begin failure propagates", func(t *testing.T) {
		mockLockRepo := persistencemocks.NewMockSeatLockRepository(t)
		mockSeatRepo := persistencemocks.NewMockSeatRepository(t)
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockScheduler := coremocks.NewMockTaskScheduler(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		beginErr := errors.New("connection refused")
		mockUow.EXPECT().Begin(mock.Anything).Return(nil, beginErr).Once()

		service := NewService(mockLockRepo, mockSeatRepo, mockUow, mockScheduler, mockTime, mockLogger, nil)

		lock, err := service.Create(ctx, request)

		assert.Nil(t, lock)
		assert.Equal(t, beginErr, err)
	})
}
