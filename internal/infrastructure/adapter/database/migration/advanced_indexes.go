package migration

import (
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Partial index over pending locks only. Overlap checks and boot
	// recovery never read finished rows.
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seat_locks_pending
		ON seat_locks (seat_id, lock_start, expire_time)
		WHERE finish = 0
	`).Error; err != nil {
		m.logger.Error("Failed to create pending seat_locks partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Matcher sweeps read queued orders oldest first
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_waiting_orders_queued
		ON waiting_orders (created_at)
		WHERE status = 0
	`).Error; err != nil {
		m.logger.Error("Failed to create queued waiting_orders partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Expiry sweeps filter queued orders by expire_time
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_waiting_orders_expire_time
		ON waiting_orders (expire_time)
		WHERE status = 0
	`).Error; err != nil {
		m.logger.Error("Failed to create waiting_orders expire_time index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Candidate seat enumeration joins seats by carriage and class
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seats_carriage_type
		ON seats (carriage_id, seat_type)
	`).Error; err != nil {
		m.logger.Error("Failed to create seats carriage_type composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seat_locks_created_at_brin
		ON seat_locks USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on seat_locks.created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Seat locks are updated in place on every lifecycle transition,
	// lower fillfactor reduces page splits
	if err := m.db.Exec(`
		ALTER TABLE seat_locks SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for seat_locks table", map[string]any{
			"error": err.Error(),
		})
		// Not critical
	}

	if err := m.db.Exec(`
		ALTER TABLE seat_locks ALTER COLUMN seat_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for seat_id", map[string]any{
			"error": err.Error(),
		})
		// Not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
