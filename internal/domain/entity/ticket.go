package entity

import "time"

// Ticket records the outcome of a fulfilled waiting order. The wider
// ticketing flow lives outside the engine; only creation happens here.
type Ticket struct {
	ID             uint64
	TicketNo       string
	SeatLockID     uint64
	WaitingOrderID uint64
	CreatedAt      time.Time
}
