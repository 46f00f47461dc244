package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/model"
)

// TrainRepository implements timetable reads using GORM
type TrainRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTrainRepository creates a new TrainRepository instance
func NewTrainRepository(db *gorm.DB, logger coreport.Logger) *TrainRepository {
	return &TrainRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByID retrieves a train
func (r *TrainRepository) GetByID(ctx context.Context, id uint64) (*entity.Train, error) {
	var m model.Train
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTrainNotFound
		}
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return &entity.Train{
		ID:             m.ID,
		ModelID:        m.TrainModelID,
		Date:           m.Date,
		DepartureTime:  m.DepartureTime,
		ArrivalTime:    m.ArrivalTime,
		StartStationID: m.StartStationID,
		EndStationID:   m.EndStationID,
	}, nil
}

// FindStop returns the stop-timetable record for a train at a station.
// Origin and terminus stations usually have no stop record; that is not
// an error, the caller falls back to the train's own timetable.
func (r *TrainRepository) FindStop(ctx context.Context, trainID, stationID uint64) (*entity.TrainStop, error) {
	var m model.TrainStop
	err := r.db.WithContext(ctx).
		Where("train_id = ? AND station_id = ?", trainID, stationID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return &entity.TrainStop{
		ID:          m.ID,
		TrainID:     m.TrainID,
		StationID:   m.StationID,
		ArrivalTime: m.ArrivalTime,
	}, nil
}
