package entity

// SeatStatus is the occupancy projection the engine flips on lock transitions
type SeatStatus int

const (
	// SeatLocked means a lock's window has begun and the seat is occupied
	SeatLocked SeatStatus = 0
	// SeatAvailable means no active lock window covers the seat right now
	SeatAvailable SeatStatus = 1
)

// Seat is an external entity the engine references but does not own.
// Only Status is ever written by the engine.
type Seat struct {
	ID         uint64
	CarriageID uint64
	SeatNumber string
	SeatType   int
	Status     SeatStatus
}

// MarkLocked flips the seat to occupied
func (s *Seat) MarkLocked() {
	s.Status = SeatLocked
}

// MarkAvailable flips the seat back to free
func (s *Seat) MarkAvailable() {
	s.Status = SeatAvailable
}

// IsAvailable reports whether the seat is currently free
func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}
