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
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
	coremocks "github.com/southernMD/railway-reservation/mocks/port/core"
	persistencemocks "github.com/southernMD/railway-reservation/mocks/port/persistence"
	usecasemocks "github.com/southernMD/railway-reservation/mocks/port/usecase"
)

type matcherFixture struct {
	orderRepo  *persistencemocks.MockWaitingOrderRepository
	trainRepo  *persistencemocks.MockTrainRepository
	seatRepo   *persistencemocks.MockSeatRepository
	lockRepo   *persistencemocks.MockSeatLockRepository
	ticketRepo *persistencemocks.MockTicketRepository
	seatLocks  *usecasemocks.MockSeatLockUseCase
	time       *coremocks.MockTimeProvider
	logger     *coremocks.MockLogger
	service    *Service
}

func newMatcherFixture(t *testing.T, now time.Time) *matcherFixture {
	f := &matcherFixture{
		orderRepo:  persistencemocks.NewMockWaitingOrderRepository(t),
		trainRepo:  persistencemocks.NewMockTrainRepository(t),
		seatRepo:   persistencemocks.NewMockSeatRepository(t),
		lockRepo:   persistencemocks.NewMockSeatLockRepository(t),
		ticketRepo: persistencemocks.NewMockTicketRepository(t),
		seatLocks:  usecasemocks.NewMockSeatLockUseCase(t),
		time:       coremocks.NewMockTimeProvider(t),
		logger:     coremocks.NewMockLogger(t),
	}
	f.time.EXPECT().Now().Return(now).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	f.service = NewService(
		f.orderRepo, f.trainRepo, f.seatRepo, f.lockRepo, f.ticketRepo,
		f.seatLocks, f.time, f.logger, coreport.Hour,
	)
	return f
}

func TestProcessWaitingOrders(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	now := date.Add(8 * time.Hour)
	windowStart := date.Add(10 * time.Hour)
	windowEnd := date.Add(14 * time.Hour)

	newOrder := func(id uint64) *entity.WaitingOrder {
		return &entity.WaitingOrder{
			ID: id, UserID: 5, TrainID: 3, Date: date,
			DepartureStationID: 100, ArrivalStationID: 200,
			SeatType: 1, PassengerCount: 1, Status: entity.WaitingQueued,
		}
	}

	expectResolvableWindow := func(f *matcherFixture) {
		f.trainRepo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Train{ID: 3, StartStationID: 100, EndStationID: 200}, nil)
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(100)).
			Return(&entity.TrainStop{TrainID: 3, StationID: 100, ArrivalTime: windowStart}, nil)
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(200)).
			Return(&entity.TrainStop{TrainID: 3, StationID: 200, ArrivalTime: windowEnd}, nil)
	}

	createRequest := func(seatID uint64) usecase.CreateLockRequest {
		return usecase.CreateLockRequest{
			SeatID:     seatID,
			LockStart:  windowStart,
			ExpireTime: windowEnd,
			Reason:     entity.WaitlistAssignmentReason,
			Type:       entity.LockTypeWaitlist,
		}
	}

	t.Run("Fulfils a queued order with the first free seat", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		expectResolvableWindow(f)
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11, Status: entity.SeatAvailable}}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).
			Return(nil, nil).Once()
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(11)).
			Return(&entity.SeatLock{ID: 99, SeatID: 11, LockStart: windowStart, ExpireTime: windowEnd}, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(o *entity.WaitingOrder) bool {
			return o.ID == 1 && o.Status == entity.WaitingFulfilled
		})).Return(nil).Once()
		f.ticketRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(ticket *entity.Ticket) bool {
			return ticket.SeatLockID == 99 && ticket.WaitingOrderID == 1 && len(ticket.TicketNo) == 32
		})).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingFulfilled, order.Status)
	})

	t.Run("Occupied seat is skipped for the next candidate", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		expectResolvableWindow(f)
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11}, {ID: 12}}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).
			Return([]*entity.SeatLock{
				{SeatID: 11, LockStart: windowStart, ExpireTime: windowEnd, Finish: entity.LockPending},
			}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(12)).
			Return(nil, nil).Once()
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(12)).
			Return(&entity.SeatLock{ID: 100, SeatID: 12}, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil).Once()
		f.ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingFulfilled, order.Status)
	})

	t.Run("Create conflict falls through to the next candidate", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		expectResolvableWindow(f)
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11}, {ID: 12}}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).Return(nil, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(12)).Return(nil, nil).Once()
		// a direct booking raced the matcher on seat 11
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(11)).
			Return(nil, errs.NewLockConflictError(11, windowStart, windowEnd)).Once()
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(12)).
			Return(&entity.SeatLock{ID: 100, SeatID: 12}, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil).Once()
		f.ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingFulfilled, order.Status)
	})

	t.Run("Order too close to departure expires", func(t *testing.T) {
		// 09:30, only half an hour before the window opens at 10:00
		f := newMatcherFixture(t, date.Add(9*time.Hour+30*time.Minute))
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		expectResolvableWindow(f)
		f.orderRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(o *entity.WaitingOrder) bool {
			return o.ID == 1 && o.Status == entity.WaitingExpired
		})).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		f.seatRepo.AssertNotCalled(t, "FindCandidates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unresolvable window expires the order", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		// departure station has no stop record and is not the origin
		f.trainRepo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Train{ID: 3, StartStationID: 900, EndStationID: 200}, nil).Once()
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(100)).Return(nil, nil).Once()
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(200)).
			Return(&entity.TrainStop{ArrivalTime: windowEnd}, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(o *entity.WaitingOrder) bool {
			return o.Status == entity.WaitingExpired
		})).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
	})

	t.Run("Origin and terminus fall back to the train timetable", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		f.trainRepo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Train{
				ID: 3, StartStationID: 100, EndStationID: 200,
				DepartureTime: windowStart, ArrivalTime: windowEnd,
			}, nil).Once()
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(100)).Return(nil, nil).Once()
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(200)).Return(nil, nil).Once()
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11}}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).Return(nil, nil).Once()
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(11)).
			Return(&entity.SeatLock{ID: 99, SeatID: 11}, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil).Once()
		f.ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingFulfilled, order.Status)
	})

	t.Run("No free seat leaves the order queued", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		order := newOrder(1)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{order}, nil).Once()
		expectResolvableWindow(f)
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11}}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).
			Return([]*entity.SeatLock{
				{SeatID: 11, LockStart: windowStart, ExpireTime: windowEnd, Finish: entity.LockPending},
			}, nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingQueued, order.Status)
		f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Earlier order wins the only free seat", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		first := newOrder(1)
		second := newOrder(2)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{first, second}, nil).Once()
		expectResolvableWindow(f)
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11}}, nil).Twice()

		assigned := &entity.SeatLock{ID: 99, SeatID: 11, LockStart: windowStart, ExpireTime: windowEnd, Finish: entity.LockPending}
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).Return(nil, nil).Once()
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(11)).Return(assigned, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, first).Return(nil).Once()
		f.ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		// the second sweep iteration sees the freshly created lock
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).
			Return([]*entity.SeatLock{assigned}, nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingFulfilled, first.Status)
		assert.Equal(t, entity.WaitingQueued, second.Status)
	})

	t.Run("One failing order never aborts the sweep", func(t *testing.T) {
		f := newMatcherFixture(t, now)
		broken := newOrder(1)
		healthy := newOrder(2)

		f.orderRepo.EXPECT().FindQueuedOldestFirst(mock.Anything).
			Return([]*entity.WaitingOrder{broken, healthy}, nil).Once()
		f.trainRepo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(nil, errs.ErrTrainNotFound).Once()
		// the broken order expires; the update itself fails too
		f.orderRepo.EXPECT().Update(mock.Anything, broken).Return(errs.ErrWaitingOrderNotFound).Once()

		f.trainRepo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Train{ID: 3, StartStationID: 100, EndStationID: 200}, nil).Once()
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(100)).
			Return(&entity.TrainStop{ArrivalTime: windowStart}, nil).Once()
		f.trainRepo.EXPECT().FindStop(mock.Anything, uint64(3), uint64(200)).
			Return(&entity.TrainStop{ArrivalTime: windowEnd}, nil).Once()
		f.seatRepo.EXPECT().FindCandidates(mock.Anything, uint64(3), 1).
			Return([]*entity.Seat{{ID: 11}}, nil).Once()
		f.lockRepo.EXPECT().FindPendingBySeat(mock.Anything, uint64(11)).Return(nil, nil).Once()
		f.seatLocks.EXPECT().Create(mock.Anything, createRequest(11)).
			Return(&entity.SeatLock{ID: 99, SeatID: 11}, nil).Once()
		f.orderRepo.EXPECT().Update(mock.Anything, healthy).Return(nil).Once()
		f.ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		err := f.service.ProcessWaitingOrders(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.WaitingFulfilled, healthy.Status)
	})
}
