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

// SeatLockRepository implements the durable lock store using GORM
type SeatLockRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSeatLockRepository creates a new SeatLockRepository instance
func NewSeatLockRepository(db *gorm.DB, logger coreport.Logger) *SeatLockRepository {
	return &SeatLockRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SeatLockRepository) WithTx(tx *gorm.DB) *SeatLockRepository {
	return &SeatLockRepository{
		db:              tx,
		logger:          r.logger,
		errorClassifier: r.errorClassifier,
	}
}

// Create persists a new lock and assigns its ID
func (r *SeatLockRepository) Create(ctx context.Context, lock *entity.SeatLock) error {
	m := seatLockToModel(lock)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to insert seat lock", map[string]any{
			"seat_id": lock.SeatID,
			"error":   err.Error(),
		})
		return wrapStoreError(r.errorClassifier, err)
	}
	lock.ID = m.ID
	return nil
}

// GetByID retrieves a lock by its identifier
func (r *SeatLockRepository) GetByID(ctx context.Context, id uint64) (*entity.SeatLock, error) {
	var m model.SeatLock
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrLockNotFound
		}
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return seatLockToEntity(&m), nil
}

// Update persists lifecycle changes of an existing lock
func (r *SeatLockRepository) Update(ctx context.Context, lock *entity.SeatLock) error {
	result := r.db.WithContext(ctx).Model(&model.SeatLock{}).
		Where("id = ?", lock.ID).
		Updates(map[string]any{
			"finish":     int(lock.Finish),
			"updated_at": lock.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update seat lock", map[string]any{
			"lock_id": lock.ID,
			"error":   result.Error.Error(),
		})
		return wrapStoreError(r.errorClassifier, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLockNotFound
	}
	return nil
}

// FindPendingBySeat returns every pending lock on one seat
func (r *SeatLockRepository) FindPendingBySeat(ctx context.Context, seatID uint64) ([]*entity.SeatLock, error) {
	var models []model.SeatLock
	err := r.db.WithContext(ctx).
		Where("seat_id = ? AND finish = ?", seatID, int(entity.LockPending)).
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return seatLocksToEntities(models), nil
}

// FindAllPending returns every pending lock in the store
func (r *SeatLockRepository) FindAllPending(ctx context.Context) ([]*entity.SeatLock, error) {
	var models []model.SeatLock
	err := r.db.WithContext(ctx).
		Where("finish = ?", int(entity.LockPending)).
		Find(&models).Error
	if err != nil {
		return nil, wrapStoreError(r.errorClassifier, err)
	}
	return seatLocksToEntities(models), nil
}

func seatLockToModel(lock *entity.SeatLock) *model.SeatLock {
	return &model.SeatLock{
		ID:         lock.ID,
		SeatID:     lock.SeatID,
		LockStart:  lock.LockStart,
		ExpireTime: lock.ExpireTime,
		Finish:     int(lock.Finish),
		Reason:     lock.Reason,
		LockType:   int(lock.Type),
		CreatedAt:  lock.CreatedAt,
		UpdatedAt:  lock.UpdatedAt,
	}
}

func seatLockToEntity(m *model.SeatLock) *entity.SeatLock {
	return &entity.SeatLock{
		ID:         m.ID,
		SeatID:     m.SeatID,
		LockStart:  m.LockStart,
		ExpireTime: m.ExpireTime,
		Finish:     entity.LockFinish(m.Finish),
		Reason:     m.Reason,
		Type:       entity.LockType(m.LockType),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func seatLocksToEntities(models []model.SeatLock) []*entity.SeatLock {
	locks := make([]*entity.SeatLock, 0, len(models))
	for i := range models {
		locks = append(locks, seatLockToEntity(&models[i]))
	}
	return locks
}
