package model

import (
	"time"
)

// Train represents the database model for scheduled trains
type Train struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	TrainModelID   uint64    `gorm:"not null;index"`
	Date           time.Time `gorm:"not null;index"`
	DepartureTime  time.Time `gorm:"not null"`
	ArrivalTime    time.Time `gorm:"not null"`
	StartStationID uint64    `gorm:"not null"`
	EndStationID   uint64    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Train
func (Train) TableName() string {
	return "trains"
}

// TrainStop represents one scheduled stop of a train at a station
type TrainStop struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	TrainID     uint64    `gorm:"not null;uniqueIndex:idx_train_stops_train_station"`
	StationID   uint64    `gorm:"not null;uniqueIndex:idx_train_stops_train_station"`
	ArrivalTime time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for TrainStop
func (TrainStop) TableName() string {
	return "train_stops"
}
