package entity

import (
	"time"

	errs "github.com/southernMD/railway-reservation/internal/domain/error"
	"github.com/southernMD/railway-reservation/internal/domain/overlap"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
)

// LockFinish is the tri-state lifecycle flag of a seat lock
type LockFinish int

const (
	// LockPending means the lock has not been activated or released yet
	LockPending LockFinish = 0
	// LockReleased means the window elapsed (or was completed) and the seat is free
	LockReleased LockFinish = 1
	// LockCancelled means the lock was withdrawn before or during its window
	LockCancelled LockFinish = 2
)

// LockType classifies where a reservation came from. Audit only, no
// behavioral effect.
type LockType int

const (
	// LockTypePurchase marks a lock created by a direct booking
	LockTypePurchase LockType = 0
	// LockTypeWaitlist marks a lock created by the waiting-order matcher
	LockTypeWaitlist LockType = 1
)

// WaitlistAssignmentReason is the audit reason recorded on matcher-created locks
const WaitlistAssignmentReason = "waitlist assignment"

// SeatLock is the durable record of one reservation window on one seat
type SeatLock struct {
	ID         uint64
	SeatID     uint64
	LockStart  time.Time
	ExpireTime time.Time
	Finish     LockFinish
	Reason     string
	Type       LockType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSeatLock creates a pending seat lock after validating the window
func NewSeatLock(seatID uint64, lockStart, expireTime time.Time, reason string, lockType LockType, timeProvider coreport.TimeProvider) (*SeatLock, error) {
	if seatID == 0 {
		return nil, errs.ErrInvalidSeatID
	}
	if lockStart.IsZero() || expireTime.IsZero() {
		return nil, errs.NewIntervalError(lockStart, expireTime, "zero boundary")
	}
	if !lockStart.Before(expireTime) {
		return nil, errs.NewIntervalError(lockStart, expireTime, "lock start must precede expire time")
	}

	now := timeProvider.Now()
	return &SeatLock{
		SeatID:     seatID,
		LockStart:  lockStart,
		ExpireTime: expireTime,
		Finish:     LockPending,
		Reason:     reason,
		Type:       lockType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsPending reports whether the lock still awaits its transitions
func (l *SeatLock) IsPending() bool {
	return l.Finish == LockPending
}

// Window returns the reserved interval for overlap checking
func (l *SeatLock) Window() overlap.Interval {
	return overlap.Interval{Start: l.LockStart, End: l.ExpireTime}
}

// Release marks the lock as released
func (l *SeatLock) Release(timeProvider coreport.TimeProvider) {
	l.Finish = LockReleased
	l.UpdatedAt = timeProvider.Now()
}

// Cancel marks the lock as cancelled
func (l *SeatLock) Cancel(timeProvider coreport.TimeProvider) {
	l.Finish = LockCancelled
	l.UpdatedAt = timeProvider.Now()
}
