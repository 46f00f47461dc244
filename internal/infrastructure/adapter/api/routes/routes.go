package routes

import (
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/api/handler"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	seatLockHandler *handler.SeatLockHandler,
	waitingOrderHandler *handler.WaitingOrderHandler,
) {
	// Seat lock routes
	lockRoutes := router.Group("/seat-locks")
	{
		// POST /seat-locks
		lockRoutes.POST("", seatLockHandler.CreateLock)

		// DELETE /seat-locks/:lockId
		lockRoutes.DELETE("/:lockId", seatLockHandler.CancelLock)

		// POST /seat-locks/:lockId/complete
		lockRoutes.POST("/:lockId/complete", seatLockHandler.CompleteLock)
	}

	// Waiting order routes
	orderRoutes := router.Group("/waiting-orders")
	{
		// POST /waiting-orders
		orderRoutes.POST("", waitingOrderHandler.CreateOrder)

		// GET /waiting-orders/:orderId
		orderRoutes.GET("/:orderId", waitingOrderHandler.GetOrder)

		// DELETE /waiting-orders/:orderId
		orderRoutes.DELETE("/:orderId", waitingOrderHandler.CancelOrder)
	}

	// GET /users/:userId/waiting-orders
	router.GET("/users/:userId/waiting-orders", waitingOrderHandler.GetUserOrders)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
