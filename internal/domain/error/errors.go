package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInterval      = 4001
	CodeInvalidSeatID        = 4002
	CodeConstraintViolation  = 4005
	CodeSeatNotFound         = 4040
	CodeLockNotFound         = 4041
	CodeTrainNotFound        = 4042
	CodeWaitingOrderNotFound = 4043
	CodeLockConflict         = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidInterval is returned when a reservation window is inverted or malformed
	ErrInvalidInterval = errors.New("invalid time interval")

	// ErrInvalidSeatID is returned when the seat ID is not a positive integer
	ErrInvalidSeatID = errors.New("seat ID must be positive")

	// ErrLockConflict is returned when a new window overlaps a pending lock on the same seat
	ErrLockConflict = errors.New("seat already has an overlapping reservation")

	// ErrSeatNotFound is returned when the referenced seat doesn't exist
	ErrSeatNotFound = errors.New("seat not found")

	// ErrLockNotFound is returned when the requested seat lock doesn't exist
	ErrLockNotFound = errors.New("seat lock not found")

	// ErrTrainNotFound is returned when the referenced train doesn't exist
	ErrTrainNotFound = errors.New("train not found")

	// ErrWaitingOrderNotFound is returned when the requested waiting order doesn't exist
	ErrWaitingOrderNotFound = errors.New("waiting order not found")

	// ErrTicketNotFound is returned when the requested ticket doesn't exist
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInterval):
		return CodeInvalidInterval
	case errors.Is(err, ErrInvalidSeatID):
		return CodeInvalidSeatID
	case errors.Is(err, ErrLockConflict):
		return CodeLockConflict
	case errors.Is(err, ErrSeatNotFound):
		return CodeSeatNotFound
	case errors.Is(err, ErrLockNotFound):
		return CodeLockNotFound
	case errors.Is(err, ErrTrainNotFound):
		return CodeTrainNotFound
	case errors.Is(err, ErrWaitingOrderNotFound):
		return CodeWaitingOrderNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// LockConflictError carries the window that collided with a pending lock
type LockConflictError struct {
	SeatID     uint64
	LockStart  time.Time
	ExpireTime time.Time
}

// Error implements the error interface
func (e *LockConflictError) Error() string {
	return fmt.Sprintf("seat %d already has a pending lock overlapping [%s, %s]",
		e.SeatID, e.LockStart.Format(time.RFC3339), e.ExpireTime.Format(time.RFC3339))
}

// Is checks if the target error is an ErrLockConflict
func (e *LockConflictError) Is(target error) bool {
	return target == ErrLockConflict
}

// LogFields returns a map of fields for structured logging
func (e *LockConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "lock_conflict",
		"seat_id":     e.SeatID,
		"lock_start":  e.LockStart,
		"expire_time": e.ExpireTime,
		"error_code":  CodeLockConflict,
	}
}

// NewLockConflictError creates a new detailed lock conflict error
func NewLockConflictError(seatID uint64, lockStart, expireTime time.Time) error {
	return &LockConflictError{
		SeatID:     seatID,
		LockStart:  lockStart,
		ExpireTime: expireTime,
	}
}

// IntervalError describes an inverted or malformed time interval.
// These indicate caller bugs, not recoverable conditions.
type IntervalError struct {
	Start  time.Time
	End    time.Time
	Reason string
}

// Error implements the error interface
func (e *IntervalError) Error() string {
	return fmt.Sprintf("invalid interval [%s, %s]: %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), e.Reason)
}

// Is checks if the target error is an ErrInvalidInterval
func (e *IntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// LogFields returns a map of fields for structured logging
func (e *IntervalError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_interval",
		"start":      e.Start,
		"end":        e.End,
		"reason":     e.Reason,
		"error_code": CodeInvalidInterval,
	}
}

// NewIntervalError creates a new detailed interval error
func NewIntervalError(start, end time.Time, reason string) error {
	return &IntervalError{Start: start, End: end, Reason: reason}
}

// IsLockConflictError checks if the error is a lock conflict error
func IsLockConflictError(err error) bool {
	return errors.Is(err, ErrLockConflict)
}

// IsSeatNotFoundError checks if the error is a seat not found error
func IsSeatNotFoundError(err error) bool {
	return errors.Is(err, ErrSeatNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrSeatNotFound) ||
		errors.Is(err, ErrLockNotFound) ||
		errors.Is(err, ErrTrainNotFound) ||
		errors.Is(err, ErrTicketNotFound) ||
		errors.Is(err, ErrWaitingOrderNotFound)
}

// IsInvalidIntervalError checks if the error is an invalid interval error
func IsInvalidIntervalError(err error) bool {
	return errors.Is(err, ErrInvalidInterval)
}
