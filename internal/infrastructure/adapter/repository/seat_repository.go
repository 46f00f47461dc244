package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/model"
)

// SeatRepository implements seat reads and occupancy updates using GORM
type SeatRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSeatRepository creates a new SeatRepository instance
func NewSeatRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SeatRepository {
	return &SeatRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SeatRepository) WithTx(tx *gorm.DB) *SeatRepository {
	return &SeatRepository{
		db:              tx,
		timeProvider:    r.timeProvider,
		logger:          r.logger,
		errorClassifier: r.errorClassifier,
	}
}

// GetByID retrieves a seat by ID
func (r *SeatRepository) GetByID(ctx context.Context, id uint64) (*entity.Seat, error) {
	return r.getByID(ctx, r.db, id)
}

// GetByIDForUpdate retrieves a seat with a row-level lock. Serializes
// concurrent lock creation on the same seat; must run inside a
// transaction to have any effect.
func (r *SeatRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Seat, error) {
	return r.getByID(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *SeatRepository) getByID(ctx context.Context, db *gorm.DB, id uint64) (*entity.Seat, error) {
	var m model.Seat
	err := db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSeatNotFound
		}
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return seatToEntity(&m), nil
}

// UpdateStatus flips the seat's occupancy status
func (r *SeatRepository) UpdateStatus(ctx context.Context, seatID uint64, status entity.SeatStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Seat{}).
		Where("id = ?", seatID).
		Updates(map[string]any{
			"status":     int(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Failed to update seat status", map[string]any{
			"seat_id": seatID,
			"status":  status,
			"error":   result.Error.Error(),
		})
		return wrapStoreError(r.errorClassifier, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSeatNotFound
	}
	return nil
}

// FindCandidates enumerates seats of the requested class on a train,
// joining carriages through the train's model
func (r *SeatRepository) FindCandidates(ctx context.Context, trainID uint64, seatType int) ([]*entity.Seat, error) {
	var models []model.Seat
	err := r.db.WithContext(ctx).
		Joins("JOIN carriages ON carriages.id = seats.carriage_id").
		Joins("JOIN trains ON trains.train_model_id = carriages.train_model_id").
		Where("trains.id = ? AND seats.seat_type = ?", trainID, seatType).
		Order("seats.id").
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(r.errorClassifier, err)
	}

	seats := make([]*entity.Seat, 0, len(models))
	for i := range models {
		seats = append(seats, seatToEntity(&models[i]))
	}
	return seats, nil
}

func seatToEntity(m *model.Seat) *entity.Seat {
	return &entity.Seat{
		ID:         m.ID,
		CarriageID: m.CarriageID,
		SeatNumber: m.SeatNumber,
		SeatType:   m.SeatType,
		Status:     entity.SeatStatus(m.Status),
	}
}
