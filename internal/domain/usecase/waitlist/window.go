package waitlist

import (
	"context"
	"errors"
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// errWindowUnresolvable marks an order whose reservation window cannot be
// computed from the timetable. Stale demand, not a system failure: the
// matcher expires the order instead of retrying.
var errWindowUnresolvable = errors.New("reservation window cannot be resolved from timetable")

// resolveWindow computes the seat occupation window for a waiting order
// from the train's stop timetable. When either station has no stop record
// it may still be the train's origin or terminus, in which case the
// train's own departure/arrival time applies.
func (s *Service) resolveWindow(ctx context.Context, order *entity.WaitingOrder) (time.Time, time.Time, error) {
	train, err := s.trainRepo.GetByID(ctx, order.TrainID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	departureStop, err := s.trainRepo.FindStop(ctx, order.TrainID, order.DepartureStationID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	arrivalStop, err := s.trainRepo.FindStop(ctx, order.TrainID, order.ArrivalStationID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var startClock, endClock time.Time
	switch {
	case departureStop != nil:
		startClock = departureStop.ArrivalTime
	case train.IsOrigin(order.DepartureStationID):
		startClock = train.DepartureTime
	default:
		return time.Time{}, time.Time{}, errWindowUnresolvable
	}

	switch {
	case arrivalStop != nil:
		endClock = arrivalStop.ArrivalTime
	case train.IsTerminus(order.ArrivalStationID):
		endClock = train.ArrivalTime
	default:
		return time.Time{}, time.Time{}, errWindowUnresolvable
	}

	start := entity.CombineDateTime(order.Date, startClock)
	end := entity.CombineDateTime(order.Date, endClock)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, errWindowUnresolvable
	}

	return start, end, nil
}
