package model

import (
	"time"
)

// WaitingOrder represents the database model for queued seat demand
type WaitingOrder struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	UserID             uint64    `gorm:"not null;index"`
	TrainID            uint64    `gorm:"not null;index"`
	Date               time.Time `gorm:"not null"`
	DepartureStationID uint64    `gorm:"not null"`
	ArrivalStationID   uint64    `gorm:"not null"`
	SeatType           int       `gorm:"not null"`
	PassengerCount     int       `gorm:"not null;default:1"`
	Status             int       `gorm:"not null;default:0;index"`
	ExpireTime         time.Time
	CreatedAt          time.Time `gorm:"not null;index"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for WaitingOrder
func (WaitingOrder) TableName() string {
	return "waiting_orders"
}
