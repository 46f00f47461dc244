package dto

import "time"

// CreateSeatLockRequest represents the API request for reserving a seat window
type CreateSeatLockRequest struct {
	SeatID     uint64    `json:"seatId" binding:"required"`
	LockStart  time.Time `json:"lockStart" binding:"required"`
	ExpireTime time.Time `json:"expireTime" binding:"required"`
	Reason     string    `json:"reason"`
	LockType   int       `json:"lockType" binding:"omitempty,oneof=0 1"`
}

// SeatLockResponse represents the API response for a seat lock
type SeatLockResponse struct {
	LockID     uint64    `json:"lockId"`
	SeatID     uint64    `json:"seatId"`
	LockStart  time.Time `json:"lockStart"`
	ExpireTime time.Time `json:"expireTime"`
	Finish     int       `json:"finish"`
	Reason     string    `json:"reason,omitempty"`
	LockType   int       `json:"lockType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
