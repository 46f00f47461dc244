package migration

import (
	"context"

	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddLockTypeToSeatLocks is a migration to add the lock_type column to the
// seat_locks table. Rows created before the column existed are order holds.
type AddLockTypeToSeatLocks struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddLockTypeToSeatLocks creates a new migration instance
func NewAddLockTypeToSeatLocks(db *gorm.DB, logger coreport.Logger) *AddLockTypeToSeatLocks {
	return &AddLockTypeToSeatLocks{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddLockTypeToSeatLocks) Run(ctx context.Context) error {
	m.logger.Info("Adding lock_type column to seat_locks table", nil)

	hasLockType, err := m.checkColumnExists()
	if err != nil {
		return err
	}

	if !hasLockType {
		if err := m.db.Exec(`ALTER TABLE seat_locks ADD COLUMN lock_type INTEGER NOT NULL DEFAULT 0`).Error; err != nil {
			m.logger.Error("Failed to add lock_type column", map[string]any{"error": err.Error()})
			return err
		}
	}

	m.logger.Info("Successfully added lock_type column to seat_locks table", nil)
	return nil
}

// checkColumnExists checks if the column already exists in the table
func (m *AddLockTypeToSeatLocks) checkColumnExists() (bool, error) {
	// For PostgreSQL
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := m.db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'seat_locks' AND column_name = 'lock_type'
	`).Scan(&columns).Error

	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return false, err
	}

	return len(columns) > 0, nil
}
