package entity

import (
	"time"

	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
)

// WaitingStatus is the lifecycle of queued demand
type WaitingStatus int

const (
	// WaitingQueued means the order is still waiting for a seat
	WaitingQueued WaitingStatus = 0
	// WaitingFulfilled means the matcher assigned a seat
	WaitingFulfilled WaitingStatus = 1
	// WaitingCancelled means the user withdrew the order
	WaitingCancelled WaitingStatus = 2
	// WaitingExpired means the required window came too close or could not be resolved
	WaitingExpired WaitingStatus = 3
)

// WaitingOrder is queued demand for a seat class on a route and date.
// The matcher only reads queued orders and writes fulfilled/expired.
type WaitingOrder struct {
	ID                 uint64
	UserID             uint64
	TrainID            uint64
	Date               time.Time
	DepartureStationID uint64
	ArrivalStationID   uint64
	SeatType           int
	PassengerCount     int
	Status             WaitingStatus
	ExpireTime         time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsQueued reports whether the order is still waiting
func (o *WaitingOrder) IsQueued() bool {
	return o.Status == WaitingQueued
}

// Fulfil marks the order as satisfied by a seat assignment
func (o *WaitingOrder) Fulfil(timeProvider coreport.TimeProvider) {
	o.Status = WaitingFulfilled
	o.UpdatedAt = timeProvider.Now()
}

// Expire marks stale demand that will not be retried
func (o *WaitingOrder) Expire(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	o.Status = WaitingExpired
	o.ExpireTime = now
	o.UpdatedAt = now
}

// Cancel marks the order as withdrawn by the user
func (o *WaitingOrder) Cancel(timeProvider coreport.TimeProvider) {
	o.Status = WaitingCancelled
	o.UpdatedAt = timeProvider.Now()
}
