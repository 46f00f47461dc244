package waitlist

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
)

// CreateWaitingOrder registers new queued demand
func (s *Service) CreateWaitingOrder(ctx context.Context, req usecase.CreateWaitingOrderRequest) (*entity.WaitingOrder, error) {
	if req.UserID == 0 || req.TrainID == 0 || req.DepartureStationID == 0 || req.ArrivalStationID == 0 {
		return nil, errs.ErrInvalidRequest
	}

	passengerCount := req.PassengerCount
	if passengerCount <= 0 {
		passengerCount = 1
	}

	now := s.timeProvider.Now()
	order := &entity.WaitingOrder{
		UserID:             req.UserID,
		TrainID:            req.TrainID,
		Date:               req.Date,
		DepartureStationID: req.DepartureStationID,
		ArrivalStationID:   req.ArrivalStationID,
		SeatType:           req.SeatType,
		PassengerCount:     passengerCount,
		Status:             entity.WaitingQueued,
		ExpireTime:         req.ExpireTime,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Waiting order created", map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"train_id": order.TrainID,
	})
	return order, nil
}

// GetWaitingOrder retrieves one order
func (s *Service) GetWaitingOrder(ctx context.Context, id uint64) (*entity.WaitingOrder, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// GetUserWaitingOrders lists a user's orders
func (s *Service) GetUserWaitingOrders(ctx context.Context, userID uint64) ([]*entity.WaitingOrder, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

// CancelWaitingOrder withdraws a queued order
func (s *Service) CancelWaitingOrder(ctx context.Context, id uint64) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	order.Cancel(s.timeProvider)
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	s.logger.Info("Waiting order cancelled", map[string]any{
		"order_id": id,
	})
	return nil
}

// ProcessExpiredOrders expires queued orders whose own expire time has
// passed, independent of the matcher's window-based staleness check
func (s *Service) ProcessExpiredOrders(ctx context.Context) error {
	now := s.timeProvider.Now()
	orders, err := s.orderRepo.FindQueuedExpiredBefore(ctx, now)
	if err != nil {
		return err
	}

	for _, order := range orders {
		order.Expire(s.timeProvider)
		if err := s.orderRepo.Update(ctx, order); err != nil {
			s.logger.Warn("Failed to expire waiting order", map[string]any{
				"order_id": order.ID,
				"error":    err.Error(),
			})
		}
	}

	if len(orders) > 0 {
		s.logger.Info("Expired waiting orders processed", map[string]any{
			"count": len(orders),
		})
	}
	return nil
}
