package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	seatLockUseCase "github.com/southernMD/railway-reservation/internal/domain/usecase/seatlock"
	waitlistUseCase "github.com/southernMD/railway-reservation/internal/domain/usecase/waitlist"

	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/api/handler"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/api/routes"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/database"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/events"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/logger"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/repository"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/southernMD/railway-reservation/internal/infrastructure/adapter/time"
	"github.com/southernMD/railway-reservation/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production")

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	seatRepo := repository.NewSeatRepository(dbManager.DB(), tp, appLogger)
	lockRepo := repository.NewSeatLockRepository(dbManager.DB(), appLogger)
	trainRepo := repository.NewTrainRepository(dbManager.DB(), appLogger)
	orderRepo := repository.NewWaitingOrderRepository(dbManager.DB(), appLogger)
	ticketRepo := repository.NewTicketRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Lock event publisher
	publisher := buildEventPublisher(cfg, appLogger, tp)

	// Timer scheduler for lock transitions
	taskScheduler := scheduler.NewTimerScheduler(tp, appLogger)

	// Initialize use cases
	seatLockService := seatLockUseCase.NewService(
		lockRepo,
		seatRepo,
		uow,
		taskScheduler,
		tp,
		appLogger,
		publisher,
	)

	expireLeadTime := coreport.Duration(cfg.Scheduler.ExpireLeadTimeMinutes) * coreport.Minute
	waitlistService := waitlistUseCase.NewService(
		orderRepo,
		trainRepo,
		seatRepo,
		lockRepo,
		ticketRepo,
		seatLockService,
		tp,
		appLogger,
		expireLeadTime,
	)

	// Replay pending locks into timers before accepting any traffic
	if err := seatLockService.RecoverTasks(context.Background()); err != nil {
		appLogger.Error("Failed to recover scheduled lock transitions", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Start the periodic matcher and expiry sweeps
	matcherInterval := time.Duration(cfg.Scheduler.MatcherIntervalSeconds) * time.Second
	sweepRunner := scheduler.NewPeriodicRunner(waitlistService, matcherInterval, tp, appLogger)
	sweepRunner.Start()
	defer sweepRunner.Stop()

	// Initialize API handlers
	seatLockHandler := handler.NewSeatLockHandler(seatLockService, appLogger)
	waitingOrderHandler := handler.NewWaitingOrderHandler(waitlistService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, seatLockHandler, waitingOrderHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if closer, ok := publisher.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{
				"error": err.Error(),
			})
		}
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildEventPublisher connects to the broker when messaging is enabled.
// A broker outage degrades to the no-op publisher; lock scheduling works
// without events.
func buildEventPublisher(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) messaging.EventPublisher {
	if !cfg.Messaging.Enabled {
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewAmqpPublisher(cfg.Messaging.URL, cfg.Messaging.Queue, appLogger, tp)
	if err != nil {
		appLogger.Warn("Message broker unavailable, lock events disabled", map[string]any{
			"error": err.Error(),
		})
		return events.NewNoopPublisher()
	}
	return publisher
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("RW_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or RW_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("RW_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or RW_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("RW_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or RW_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("RW_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or RW_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("RW_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or RW_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate scheduler configuration
	if cfg.Scheduler.MatcherIntervalSeconds == 0 {
		missingConfigs = append(missingConfigs, "scheduler.matcherIntervalSeconds")
	}

	if cfg.Scheduler.ExpireLeadTimeMinutes == 0 {
		missingConfigs = append(missingConfigs, "scheduler.expireLeadTimeMinutes")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if mode := strings.ToLower(cfg.Database.SSLMode); mode != "require" && mode != "verify-ca" && mode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
