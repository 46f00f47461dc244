package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
)

func TestCreateWaitingOrder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	request := usecase.CreateWaitingOrderRequest{
		UserID:             5,
		TrainID:            3,
		Date:               date,
		DepartureStationID: 100,
		ArrivalStationID:   200,
		SeatType:           1,
		PassengerCount:     2,
		ExpireTime:         date.Add(-24 * time.Hour),
	}

	t.Run("Successful creation", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		f.orderRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(o *entity.WaitingOrder) bool {
			return o.UserID == 5 && o.TrainID == 3 && o.Status == entity.WaitingQueued && o.PassengerCount == 2
		})).Return(nil).Once()

		order, err := f.service.CreateWaitingOrder(ctx, request)

		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, entity.WaitingQueued, order.Status)
		assert.Equal(t, now, order.CreatedAt)
	})

	t.Run("Passenger count defaults to one", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		req := request
		req.PassengerCount = 0
		f.orderRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(o *entity.WaitingOrder) bool {
			return o.PassengerCount == 1
		})).Return(nil).Once()

		order, err := f.service.CreateWaitingOrder(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 1, order.PassengerCount)
	})

	t.Run("Missing identifiers rejected", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		req := request
		req.TrainID = 0

		order, err := f.service.CreateWaitingOrder(ctx, req)

		assert.Nil(t, order)
		assert.Equal(t, errs.ErrInvalidRequest, err)
	})
}

func TestCancelWaitingOrder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Cancel marks the order withdrawn", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		order := &entity.WaitingOrder{ID: 1, Status: entity.WaitingQueued}
		f.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(order, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil).Once()

		err := f.service.CancelWaitingOrder(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingCancelled, order.Status)
	})

	t.Run("Unknown order propagates", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		f.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(nil, errs.ErrWaitingOrderNotFound).Once()

		err := f.service.CancelWaitingOrder(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrWaitingOrderNotFound)
	})
}

func TestProcessExpiredOrders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Expires every order past its own deadline", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		stale := []*entity.WaitingOrder{
			{ID: 1, Status: entity.WaitingQueued, ExpireTime: now.Add(-2 * time.Hour)},
			{ID: 2, Status: entity.WaitingQueued, ExpireTime: now.Add(-1 * time.Hour)},
		}
		f.orderRepo.EXPECT().FindQueuedExpiredBefore(mock.Anything, now).Return(stale, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(o *entity.WaitingOrder) bool {
			return o.Status == entity.WaitingExpired
		})).Return(nil).Twice()

		err := f.service.ProcessExpiredOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingExpired, stale[0].Status)
		assert.Equal(t, entity.WaitingExpired, stale[1].Status)
	})

	t.Run("Nothing to expire", func(t *testing.T) {
		f := newMatcherFixture(t, now)

		f.orderRepo.EXPECT().FindQueuedExpiredBefore(mock.Anything, now).Return(nil, nil).Once()

		err := f.service.ProcessExpiredOrders(ctx)

		require.NoError(t, err)
	})
}
