package model

import (
	"time"
)

// SeatLock represents the database model for seat reservation windows.
// Rows are never deleted; the finish flag carries the lifecycle.
type SeatLock struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	SeatID     uint64    `gorm:"not null;index:idx_seat_locks_seat_finish"`
	LockStart  time.Time `gorm:"not null"`
	ExpireTime time.Time `gorm:"not null"`
	Finish     int       `gorm:"not null;default:0;index:idx_seat_locks_seat_finish"`
	Reason     string    `gorm:"type:varchar(255)"`
	LockType   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for SeatLock
func (SeatLock) TableName() string {
	return "seat_locks"
}
