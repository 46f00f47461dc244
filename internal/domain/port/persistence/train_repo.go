package persistence

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// TrainRepository resolves timetable data for window computation
type TrainRepository interface {
	// GetByID retrieves a train
	//
	// Possible errors:
	// - ErrTrainNotFound: if the train doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Train, error)

	// FindStop returns the stop-timetable record for a train at a
	// station, or (nil, nil) when the train has no stop record there
	// (origin and terminus stations usually don't)
	FindStop(ctx context.Context, trainID, stationID uint64) (*entity.TrainStop, error)
}
