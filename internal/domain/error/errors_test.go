package error

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrLockConflict.Error() != "seat already has an overlapping reservation" {
		t.Errorf("ErrLockConflict has unexpected message: %s", ErrLockConflict.Error())
	}
	if ErrInvalidInterval.Error() != "invalid time interval" {
		t.Errorf("ErrInvalidInterval has unexpected message: %s", ErrInvalidInterval.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidInterval", ErrInvalidInterval, 4001},
		{"InvalidSeatID", ErrInvalidSeatID, 4002},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"SeatNotFound", ErrSeatNotFound, 4040},
		{"LockNotFound", ErrLockNotFound, 4041},
		{"TrainNotFound", ErrTrainNotFound, 4042},
		{"WaitingOrderNotFound", ErrWaitingOrderNotFound, 4043},
		{"LockConflict", ErrLockConflict, 4090},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrSeatNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestLockConflictError(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	conflictErr := NewLockConflictError(7, start, end)

	expectedErrMsg := "seat 7 already has a pending lock overlapping [2025-06-01T10:00:00Z, 2025-06-01T14:00:00Z]"
	if conflictErr.Error() != expectedErrMsg {
		t.Errorf("LockConflictError.Error() = %s, want %s", conflictErr.Error(), expectedErrMsg)
	}

	if !errors.Is(conflictErr, ErrLockConflict) {
		t.Errorf("errors.Is(conflictErr, ErrLockConflict) = false, want true")
	}
	if !IsLockConflictError(conflictErr) {
		t.Errorf("IsLockConflictError(conflictErr) = false, want true")
	}

	fields := conflictErr.(*LockConflictError).LogFields()
	if fields["seat_id"] != uint64(7) {
		t.Errorf("LogFields()[seat_id] = %v, want 7", fields["seat_id"])
	}
	if fields["error_code"] != CodeLockConflict {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeLockConflict)
	}
}

func TestIntervalError(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	intervalErr := NewIntervalError(start, end, "lock start must precede expire time")

	expectedErrMsg := "invalid interval [2025-06-01T14:00:00Z, 2025-06-01T10:00:00Z]: lock start must precede expire time"
	if intervalErr.Error() != expectedErrMsg {
		t.Errorf("IntervalError.Error() = %s, want %s", intervalErr.Error(), expectedErrMsg)
	}

	if !errors.Is(intervalErr, ErrInvalidInterval) {
		t.Errorf("errors.Is(intervalErr, ErrInvalidInterval) = false, want true")
	}
	if !IsInvalidIntervalError(intervalErr) {
		t.Errorf("IsInvalidIntervalError(intervalErr) = false, want true")
	}
}

func TestIsNotFoundError(t *testing.T) {
	notFound := []error{ErrNotFound, ErrSeatNotFound, ErrLockNotFound, ErrTrainNotFound, ErrTicketNotFound, ErrWaitingOrderNotFound}
	for _, err := range notFound {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}

	if IsNotFoundError(ErrLockConflict) {
		t.Errorf("IsNotFoundError(ErrLockConflict) = true, want false")
	}
	if IsNotFoundError(nil) {
		t.Errorf("IsNotFoundError(nil) = true, want false")
	}
}
