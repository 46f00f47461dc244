package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	domainerr "github.com/southernMD/railway-reservation/internal/domain/error"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SeatLockHandler handles seat lock HTTP requests
type SeatLockHandler struct {
	seatLocks usecase.SeatLockUseCase
	logger    coreport.Logger
}

// NewSeatLockHandler creates a new seat lock handler instance
func NewSeatLockHandler(seatLocks usecase.SeatLockUseCase, logger coreport.Logger) *SeatLockHandler {
	return &SeatLockHandler{
		seatLocks: seatLocks,
		logger:    logger,
	}
}

// CreateLock handles the POST /seat-locks endpoint
func (h *SeatLockHandler) CreateLock(c *gin.Context) {
	var req dto.CreateSeatLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid seat lock request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	lock, err := h.seatLocks.Create(c.Request.Context(), usecase.CreateLockRequest{
		SeatID:     req.SeatID,
		LockStart:  req.LockStart,
		ExpireTime: req.ExpireTime,
		Reason:     req.Reason,
		Type:       entity.LockType(req.LockType),
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"

		switch {
		case errors.Is(err, domainerr.ErrLockConflict):
			statusCode = http.StatusConflict
			message = err.Error()
		case errors.Is(err, domainerr.ErrSeatNotFound):
			statusCode = http.StatusNotFound
			message = "Seat not found"
		case errors.Is(err, domainerr.ErrInvalidInterval),
			errors.Is(err, domainerr.ErrInvalidSeatID):
			statusCode = http.StatusBadRequest
			message = err.Error()
		}

		h.logger.Error("Error creating seat lock", map[string]any{
			"seat_id": req.SeatID,
			"error":   err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, toSeatLockResponse(lock))
}

// CancelLock handles the DELETE /seat-locks/{lockId} endpoint
func (h *SeatLockHandler) CancelLock(c *gin.Context) {
	lockID, ok := parseLockID(c)
	if !ok {
		return
	}

	lock, err := h.seatLocks.Cancel(c.Request.Context(), lockID)
	if err != nil {
		h.logger.Error("Error cancelling seat lock", map[string]any{
			"lock_id": lockID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	// Unknown lock is a soft failure, the desired end state already holds
	if lock == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrLockNotFound),
			Message: "Seat lock not found",
		})
		return
	}

	c.JSON(http.StatusOK, toSeatLockResponse(lock))
}

// CompleteLock handles the POST /seat-locks/{lockId}/complete endpoint
func (h *SeatLockHandler) CompleteLock(c *gin.Context) {
	lockID, ok := parseLockID(c)
	if !ok {
		return
	}

	lock, err := h.seatLocks.Complete(c.Request.Context(), lockID)
	if err != nil {
		h.logger.Error("Error completing seat lock", map[string]any{
			"lock_id": lockID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	if lock == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrLockNotFound),
			Message: "Seat lock not found",
		})
		return
	}

	c.JSON(http.StatusOK, toSeatLockResponse(lock))
}

// parseLockID extracts the lock ID path parameter, writing the error
// response itself when the parameter is malformed
func parseLockID(c *gin.Context) (uint64, bool) {
	lockIDParam := c.Param("lockId")
	lockID, err := strconv.ParseUint(lockIDParam, 10, 64)
	if err != nil || lockID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid lock ID format",
		})
		return 0, false
	}
	return lockID, true
}

func toSeatLockResponse(lock *entity.SeatLock) dto.SeatLockResponse {
	return dto.SeatLockResponse{
		LockID:     lock.ID,
		SeatID:     lock.SeatID,
		LockStart:  lock.LockStart,
		ExpireTime: lock.ExpireTime,
		Finish:     int(lock.Finish),
		Reason:     lock.Reason,
		LockType:   int(lock.Type),
		CreatedAt:  lock.CreatedAt,
		UpdatedAt:  lock.UpdatedAt,
	}
}
