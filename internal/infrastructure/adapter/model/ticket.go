package model

import (
	"time"
)

// Ticket represents the database model for issued tickets
type Ticket struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	TicketNo       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	SeatLockID     uint64    `gorm:"not null;index"`
	WaitingOrderID uint64    `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
