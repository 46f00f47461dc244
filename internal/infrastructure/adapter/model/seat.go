package model

import (
	"time"
)

// Seat represents the database model for seats
type Seat struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	CarriageID uint64    `gorm:"not null;index"`
	SeatNumber string    `gorm:"type:varchar(10);not null"`
	SeatType   int       `gorm:"not null;index"`
	Status     int       `gorm:"not null;default:1"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// Carriage represents one car of a train model
type Carriage struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	TrainModelID   uint64    `gorm:"not null;index"`
	CarriageNumber int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Carriage
func (Carriage) TableName() string {
	return "carriages"
}
