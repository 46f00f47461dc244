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
)

func TestCancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Cancel finishes the lock without touching the seat", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		lock := &entity.SeatLock{ID: 7, SeatID: 42, Finish: entity.LockPending}
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(lock, nil).Once()
		f.lockRepo.EXPECT().Update(mock.Anything, lock).Return(nil).Once()

		got, err := f.service.Cancel(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entity.LockCancelled, got.Finish)
		f.seatRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown lock is a soft failure", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(nil, errs.ErrLockNotFound).Once()

		got, err := f.service.Cancel(ctx, 7)

		assert.Nil(t, got)
		assert.NoError(t, err)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		dbErr := errors.New("database unreachable")
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, dbErr).Once()

		got, err := f.service.Cancel(ctx, 7)

		assert.Nil(t, got)
		assert.Equal(t, dbErr, err)
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Complete releases the lock and frees the seat", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		lock := &entity.SeatLock{ID: 7, SeatID: 42, Finish: entity.LockPending}
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(lock, nil).Once()
		f.lockRepo.EXPECT().Update(mock.Anything, lock).Return(nil).Once()
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(42), entity.SeatAvailable).Return(nil).Once()

		got, err := f.service.Complete(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entity.LockReleased, got.Finish)
	})

	t.Run("Unknown lock is a soft failure", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(nil, errs.ErrLockNotFound).Once()

		got, err := f.service.Complete(ctx, 7)

		assert.Nil(t, got)
		assert.NoError(t, err)
	})

	t.Run("Vanished seat is a soft failure", func(t *testing.T) {
		f := newScheduleFixture(t, now)

		lock := &entity.SeatLock{ID: 7, SeatID: 42, Finish: entity.LockPending}
		f.lockRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(lock, nil).Once()
		f.lockRepo.EXPECT().Update(mock.Anything, lock).Return(nil).Once()
		f.seatRepo.EXPECT().UpdateStatus(mock.Anything, uint64(42), entity.SeatAvailable).
			Return(errs.ErrSeatNotFound).Once()

		got, err := f.service.Complete(ctx, 7)

		assert.Nil(t, got)
		assert.NoError(t, err)
	})
}
