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

// WaitingOrderHandler handles waiting order HTTP requests
type WaitingOrderHandler struct {
	waitingOrders usecase.WaitingOrderUseCase
	logger        coreport.Logger
}

// NewWaitingOrderHandler creates a new waiting order handler instance
func NewWaitingOrderHandler(waitingOrders usecase.WaitingOrderUseCase, logger coreport.Logger) *WaitingOrderHandler {
	return &WaitingOrderHandler{
		waitingOrders: waitingOrders,
		logger:        logger,
	}
}

// CreateOrder handles the POST /waiting-orders endpoint
func (h *WaitingOrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateWaitingOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid waiting order request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	order, err := h.waitingOrders.CreateWaitingOrder(c.Request.Context(), usecase.CreateWaitingOrderRequest{
		UserID:             req.UserID,
		TrainID:            req.TrainID,
		Date:               req.Date,
		DepartureStationID: req.DepartureStationID,
		ArrivalStationID:   req.ArrivalStationID,
		SeatType:           req.SeatType,
		PassengerCount:     req.PassengerCount,
		ExpireTime:         req.ExpireTime,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"

		if errors.Is(err, domainerr.ErrInvalidRequest) {
			statusCode = http.StatusBadRequest
			message = err.Error()
		}

		h.logger.Error("Error creating waiting order", map[string]any{
			"user_id":  req.UserID,
			"train_id": req.TrainID,
			"error":    err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, toWaitingOrderResponse(order))
}

// GetOrder handles the GET /waiting-orders/{orderId} endpoint
func (h *WaitingOrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.waitingOrders.GetWaitingOrder(c.Request.Context(), orderID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"

		if errors.Is(err, domainerr.ErrWaitingOrderNotFound) {
			statusCode = http.StatusNotFound
			message = "Waiting order not found"
		} else {
			h.logger.Error("Error getting waiting order", map[string]any{
				"order_id": orderID,
				"error":    err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, toWaitingOrderResponse(order))
}

// GetUserOrders handles the GET /users/{userId}/waiting-orders endpoint
func (h *WaitingOrderHandler) GetUserOrders(c *gin.Context) {
	userIDParam := c.Param("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid user ID format",
		})
		return
	}

	orders, err := h.waitingOrders.GetUserWaitingOrders(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error listing waiting orders", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	resp := dto.WaitingOrderListResponse{
		UserID: userID,
		Orders: make([]dto.WaitingOrderResponse, 0, len(orders)),
	}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, toWaitingOrderResponse(order))
	}

	c.JSON(http.StatusOK, resp)
}

// CancelOrder handles the DELETE /waiting-orders/{orderId} endpoint
func (h *WaitingOrderHandler) CancelOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.waitingOrders.CancelWaitingOrder(c.Request.Context(), orderID); err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"

		if errors.Is(err, domainerr.ErrWaitingOrderNotFound) {
			statusCode = http.StatusNotFound
			message = "Waiting order not found"
		} else {
			h.logger.Error("Error cancelling waiting order", map[string]any{
				"order_id": orderID,
				"error":    err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseOrderID extracts the order ID path parameter, writing the error
// response itself when the parameter is malformed
func parseOrderID(c *gin.Context) (uint64, bool) {
	orderIDParam := c.Param("orderId")
	orderID, err := strconv.ParseUint(orderIDParam, 10, 64)
	if err != nil || orderID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid order ID format",
		})
		return 0, false
	}
	return orderID, true
}

func toWaitingOrderResponse(order *entity.WaitingOrder) dto.WaitingOrderResponse {
	return dto.WaitingOrderResponse{
		OrderID:            order.ID,
		UserID:             order.UserID,
		TrainID:            order.TrainID,
		Date:               order.Date,
		DepartureStationID: order.DepartureStationID,
		ArrivalStationID:   order.ArrivalStationID,
		SeatType:           order.SeatType,
		PassengerCount:     order.PassengerCount,
		Status:             int(order.Status),
		ExpireTime:         order.ExpireTime,
		CreatedAt:          order.CreatedAt,
	}
}
