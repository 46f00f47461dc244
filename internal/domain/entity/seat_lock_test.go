package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	coremocks "github.com/southernMD/railway-reservation/mocks/port/core"
)

func TestNewSeatLock(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := fixedTime.Add(1 * time.Hour)
	end := fixedTime.Add(3 * time.Hour)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		lock, err := NewSeatLock(42, start, end, "direct booking", LockTypePurchase, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), lock.SeatID)
		assert.Equal(t, LockPending, lock.Finish)
		assert.Equal(t, LockTypePurchase, lock.Type)
		assert.Equal(t, fixedTime, lock.CreatedAt)
		assert.True(t, lock.IsPending())
	})

	t.Run("Zero seat ID rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		lock, err := NewSeatLock(0, start, end, "", LockTypePurchase, mockTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidSeatID, err)
	})

	t.Run("Zero boundary rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		lock, err := NewSeatLock(42, time.Time{}, end, "", LockTypePurchase, mockTime)

		assert.Nil(t, lock)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Inverted window rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		lock, err := NewSeatLock(42, end, start, "", LockTypePurchase, mockTime)

		assert.Nil(t, lock)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Empty window rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		lock, err := NewSeatLock(42, start, start, "", LockTypePurchase, mockTime)

		assert.Nil(t, lock)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})
}

func TestSeatLockLifecycle(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := fixedTime.Add(2 * time.Hour)

	newLock := func(t *testing.T) *SeatLock {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		lock, err := NewSeatLock(7, fixedTime.Add(time.Hour), fixedTime.Add(3*time.Hour), "", LockTypePurchase, mockTime)
		require.NoError(t, err)
		return lock
	}

	t.Run("Release finishes the lock", func(t *testing.T) {
		lock := newLock(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(later).Once()

		lock.Release(mockTime)

		assert.Equal(t, LockReleased, lock.Finish)
		assert.Equal(t, later, lock.UpdatedAt)
		assert.False(t, lock.IsPending())
	})

	t.Run("Cancel finishes the lock", func(t *testing.T) {
		lock := newLock(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(later).Once()

		lock.Cancel(mockTime)

		assert.Equal(t, LockCancelled, lock.Finish)
		assert.False(t, lock.IsPending())
	})

	t.Run("Window exposes the reserved interval", func(t *testing.T) {
		lock := newLock(t)

		window := lock.Window()

		assert.Equal(t, lock.LockStart, window.Start)
		assert.Equal(t, lock.ExpireTime, window.End)
	})
}
