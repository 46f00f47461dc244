package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/model"
)

// WaitingOrderRepository implements the queued-demand store using GORM
type WaitingOrderRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWaitingOrderRepository creates a new WaitingOrderRepository instance
func NewWaitingOrderRepository(db *gorm.DB, logger coreport.Logger) *WaitingOrderRepository {
	return &WaitingOrderRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create persists a new waiting order and assigns its ID
func (r *WaitingOrderRepository) Create(ctx context.Context, order *entity.WaitingOrder) error {
	m := waitingOrderToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to insert waiting order", map[string]any{
			"user_id":  order.UserID,
			"train_id": order.TrainID,
			"error":    err.Error(),
		})
		return wrapStoreError(r.errorClassifier, err)
	}
	order.ID = m.ID
	return nil
}

// GetByID retrieves a waiting order
func (r *WaitingOrderRepository) GetByID(ctx context.Context, id uint64) (*entity.WaitingOrder, error) {
	var m model.WaitingOrder
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWaitingOrderNotFound
		}
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return waitingOrderToEntity(&m), nil
}

// Update persists status changes of an existing order
func (r *WaitingOrderRepository) Update(ctx context.Context, order *entity.WaitingOrder) error {
	result := r.db.WithContext(ctx).Model(&model.WaitingOrder{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":      int(order.Status),
			"expire_time": order.ExpireTime,
			"updated_at":  order.UpdatedAt,
		})
	if result.Error != nil {
		return wrapStoreError(r.errorClassifier, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWaitingOrderNotFound
	}
	return nil
}

// FindByUser returns all orders a user has placed
func (r *WaitingOrderRepository) FindByUser(ctx context.Context, userID uint64) ([]*entity.WaitingOrder, error) {
	var models []model.WaitingOrder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return waitingOrdersToEntities(models), nil
}

// FindQueuedOldestFirst returns queued orders ordered by creation time
// ascending, the FIFO input of the matcher sweep
func (r *WaitingOrderRepository) FindQueuedOldestFirst(ctx context.Context) ([]*entity.WaitingOrder, error) {
	var models []model.WaitingOrder
	err := r.db.WithContext(ctx).
		Where("status = ?", int(entity.WaitingQueued)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return waitingOrdersToEntities(models), nil
}

// FindQueuedExpiredBefore returns queued orders whose expire time has
// already passed the given instant. Orders with a zero expire time never
// expire by deadline, only by the matcher's staleness check.
func (r *WaitingOrderRepository) FindQueuedExpiredBefore(ctx context.Context, t time.Time) ([]*entity.WaitingOrder, error) {
	var models []model.WaitingOrder
	err := r.db.WithContext(ctx).
		Where("status = ? AND expire_time > ? AND expire_time < ?", int(entity.WaitingQueued), time.Time{}, t).
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return waitingOrdersToEntities(models), nil
}

func waitingOrderToModel(order *entity.WaitingOrder) *model.WaitingOrder {
	return &model.WaitingOrder{
		ID:                 order.ID,
		UserID:             order.UserID,
		TrainID:            order.TrainID,
		Date:               order.Date,
		DepartureStationID: order.DepartureStationID,
		ArrivalStationID:   order.ArrivalStationID,
		SeatType:           order.SeatType,
		PassengerCount:     order.PassengerCount,
		Status:             int(order.Status),
		ExpireTime:         order.ExpireTime,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func waitingOrderToEntity(m *model.WaitingOrder) *entity.WaitingOrder {
	return &entity.WaitingOrder{
		ID:                 m.ID,
		UserID:             m.UserID,
		TrainID:            m.TrainID,
		Date:               m.Date,
		DepartureStationID: m.DepartureStationID,
		ArrivalStationID:   m.ArrivalStationID,
		SeatType:           m.SeatType,
		PassengerCount:     m.PassengerCount,
		Status:             entity.WaitingStatus(m.Status),
		ExpireTime:         m.ExpireTime,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func waitingOrdersToEntities(models []model.WaitingOrder) []*entity.WaitingOrder {
	orders := make([]*entity.WaitingOrder, 0, len(models))
	for i := range models {
		orders = append(orders, waitingOrderToEntity(&models[i]))
	}
	return orders
}
