package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	coremocks "github.com/southernMD/railway-reservation/mocks/port/core"
)

func TestWaitingOrderLifecycle(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Fulfil marks the order satisfied", func(t *testing.T) {
		order := &WaitingOrder{Status: WaitingQueued}
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		order.Fulfil(mockTime)

		assert.Equal(t, WaitingFulfilled, order.Status)
		assert.Equal(t, fixedTime, order.UpdatedAt)
		assert.False(t, order.IsQueued())
	})

	t.Run("Expire stamps the expiry instant", func(t *testing.T) {
		order := &WaitingOrder{Status: WaitingQueued}
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		order.Expire(mockTime)

		assert.Equal(t, WaitingExpired, order.Status)
		assert.Equal(t, fixedTime, order.ExpireTime)
	})

	t.Run("Cancel marks the order withdrawn", func(t *testing.T) {
		order := &WaitingOrder{Status: WaitingQueued}
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		order.Cancel(mockTime)

		assert.Equal(t, WaitingCancelled, order.Status)
	})
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	clock := time.Date(1970, 1, 1, 9, 30, 45, 0, time.UTC)

	combined := CombineDateTime(date, clock)

	assert.Equal(t, time.Date(2025, 6, 15, 9, 30, 45, 0, time.UTC), combined)
}

func TestTrainEndpoints(t *testing.T) {
	train := &Train{StartStationID: 10, EndStationID: 20}

	assert.True(t, train.IsOrigin(10))
	assert.False(t, train.IsOrigin(20))
	assert.True(t, train.IsTerminus(20))
	assert.False(t, train.IsTerminus(10))
}
