package waitlist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/overlap"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
)

// ProcessWaitingOrders runs one sweep over queued orders, oldest first.
// A failing order is logged and skipped; one malformed record never
// aborts the rest of the sweep.
func (s *Service) ProcessWaitingOrders(ctx context.Context) error {
	orders, err := s.orderRepo.FindQueuedOldestFirst(ctx)
	if err != nil {
		s.logger.Error("Failed to load queued waiting orders", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	s.logger.Debug("Waiting-order sweep started", map[string]any{
		"queued": len(orders),
	})

	for _, order := range orders {
		if err := s.matchOrder(ctx, order); err != nil {
			s.logger.Warn("Skipping waiting order after failure", map[string]any{
				"order_id": order.ID,
				"error":    err.Error(),
			})
		}
	}

	return nil
}

// matchOrder tries to fulfil one queued order: resolve its window, expire
// it when the window is too close or unresolvable, otherwise assign the
// first candidate seat whose pending locks don't cover the window.
func (s *Service) matchOrder(ctx context.Context, order *entity.WaitingOrder) error {
	start, end, err := s.resolveWindow(ctx, order)
	if err != nil {
		// a transient store failure leaves the order queued for the next sweep
		if !errors.Is(err, errWindowUnresolvable) && !errors.Is(err, errs.ErrTrainNotFound) {
			return err
		}
		s.logger.Info("Expiring waiting order with unresolvable window", map[string]any{
			"order_id": order.ID,
			"train_id": order.TrainID,
			"error":    err.Error(),
		})
		return s.expireOrder(ctx, order)
	}

	// Demand whose window starts within the lead time is stale: there is
	// no point assigning a seat the passenger can no longer board.
	now := s.timeProvider.Now()
	if now.After(start.Add(-s.expireLeadTime.Std())) {
		s.logger.Info("Expiring stale waiting order", map[string]any{
			"order_id":     order.ID,
			"window_start": start,
		})
		return s.expireOrder(ctx, order)
	}

	seats, err := s.seatRepo.FindCandidates(ctx, order.TrainID, order.SeatType)
	if err != nil {
		return err
	}

	for _, seat := range seats {
		free, err := s.seatIsFree(ctx, seat.ID, start, end)
		if err != nil {
			s.logger.Warn("Skipping candidate seat after overlap check failure", map[string]any{
				"order_id": order.ID,
				"seat_id":  seat.ID,
				"error":    err.Error(),
			})
			continue
		}
		if !free {
			continue
		}

		assigned, err := s.assignSeat(ctx, order, seat.ID, start, end)
		if err != nil {
			return err
		}
		if assigned {
			return nil
		}
		// lost a race for this seat, try the next candidate
	}

	s.logger.Debug("No free seat for waiting order, staying queued", map[string]any{
		"order_id":   order.ID,
		"candidates": len(seats),
	})
	return nil
}

// seatIsFree checks the desired window against the seat's pending locks
func (s *Service) seatIsFree(ctx context.Context, seatID uint64, start, end time.Time) (bool, error) {
	pending, err := s.lockRepo.FindPendingBySeat(ctx, seatID)
	if err != nil {
		return false, err
	}

	intervals := make([]overlap.Interval, 0, len(pending))
	for _, lock := range pending {
		intervals = append(intervals, lock.Window())
	}

	hasOverlap, err := overlap.HasOverlap(start, end, intervals)
	if err != nil {
		return false, err
	}
	return !hasOverlap, nil
}

// assignSeat locks the seat for the order's window and marks the order
// fulfilled. Returns false without error when another booking won the
// seat between the overlap check and the create.
func (s *Service) assignSeat(ctx context.Context, order *entity.WaitingOrder, seatID uint64, start, end time.Time) (bool, error) {
	lock, err := s.seatLocks.Create(ctx, usecase.CreateLockRequest{
		SeatID:     seatID,
		LockStart:  start,
		ExpireTime: end,
		Reason:     entity.WaitlistAssignmentReason,
		Type:       entity.LockTypeWaitlist,
	})
	if err != nil {
		if errs.IsLockConflictError(err) {
			return false, nil
		}
		return false, err
	}

	order.Fulfil(s.timeProvider)
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return false, err
	}

	ticket := &entity.Ticket{
		TicketNo:       newTicketNo(),
		SeatLockID:     lock.ID,
		WaitingOrderID: order.ID,
		CreatedAt:      s.timeProvider.Now(),
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		// the assignment itself stands, the ticket can be re-issued
		s.logger.Error("Failed to issue ticket for fulfilled order", map[string]any{
			"order_id": order.ID,
			"lock_id":  lock.ID,
			"error":    err.Error(),
		})
	}

	s.logger.Info("Waiting order fulfilled", map[string]any{
		"order_id":  order.ID,
		"seat_id":   seatID,
		"lock_id":   lock.ID,
		"ticket_no": ticket.TicketNo,
	})
	return true, nil
}

// expireOrder marks stale demand that will not be retried
func (s *Service) expireOrder(ctx context.Context, order *entity.WaitingOrder) error {
	order.Expire(s.timeProvider)
	return s.orderRepo.Update(ctx, order)
}

// newTicketNo generates a 32-character ticket number
func newTicketNo() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
