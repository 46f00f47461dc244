package dto

import "time"

// CreateWaitingOrderRequest represents the API request for queueing demand
type CreateWaitingOrderRequest struct {
	UserID             uint64    `json:"userId" binding:"required"`
	TrainID            uint64    `json:"trainId" binding:"required"`
	Date               time.Time `json:"date" binding:"required"`
	DepartureStationID uint64    `json:"departureStationId" binding:"required"`
	ArrivalStationID   uint64    `json:"arrivalStationId" binding:"required"`
	SeatType           int       `json:"seatType"`
	PassengerCount     int       `json:"passengerCount" binding:"omitempty,min=1"`
	ExpireTime         time.Time `json:"expireTime"`
}

// WaitingOrderResponse represents the API response for a waiting order
type WaitingOrderResponse struct {
	OrderID            uint64    `json:"orderId"`
	UserID             uint64    `json:"userId"`
	TrainID            uint64    `json:"trainId"`
	Date               time.Time `json:"date"`
	DepartureStationID uint64    `json:"departureStationId"`
	ArrivalStationID   uint64    `json:"arrivalStationId"`
	SeatType           int       `json:"seatType"`
	PassengerCount     int       `json:"passengerCount"`
	Status             int       `json:"status"`
	ExpireTime         time.Time `json:"expireTime,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// WaitingOrderListResponse wraps a user's waiting orders
type WaitingOrderListResponse struct {
	UserID uint64                 `json:"userId"`
	Orders []WaitingOrderResponse `json:"orders"`
}
