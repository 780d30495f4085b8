package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	adminUseCase "github.com/raghavmehta/expense-ledger/internal/domain/usecase/admin"
	authUseCase "github.com/raghavmehta/expense-ledger/internal/domain/usecase/auth"
	ledgerUseCase "github.com/raghavmehta/expense-ledger/internal/domain/usecase/ledger"

	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/database"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/hash"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/logger"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/mailer"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/notify"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/time"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/token"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/config"

	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

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

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Supporting adapters
	passwordHasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenManager := token.NewJWTManager(
		cfg.Auth.JWTSecret,
		coreport.Duration(cfg.Auth.SessionTTL),
		coreport.Duration(cfg.Auth.ResetTTL),
		tp,
	)
	resetMailer := mailer.NewLogMailer(appLogger)
	feed := notify.NewHub(appLogger)

	// Use cases
	authService := authUseCase.NewAuthUseCase(userRepo, passwordHasher, tokenManager, resetMailer, tp, appLogger)
	ledgerService := ledgerUseCase.NewLedgerUseCase(transactionRepo, feed, tp, appLogger)
	adminService := adminUseCase.NewAdminUseCase(userRepo, transactionRepo, uow, feed, tp, appLogger)

	// Seed the bootstrap admin account
	seed := migration.SeedAdmin{
		Name:     cfg.Admin.SeedName,
		Email:    cfg.Admin.SeedEmail,
		Password: cfg.Admin.SeedPassword,
	}
	if err := migration.CreateDefaultAdmin(context.Background(), seed, userRepo, passwordHasher, tp, appLogger); err != nil {
		appLogger.Error("Failed to seed admin account", map[string]any{
			"error": err.Error(),
		})
	}

	// API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, appLogger)
	streamHandler := handler.NewStreamHandler(ledgerService, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authService, authHandler, ledgerHandler, streamHandler, adminHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

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

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

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

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or EL_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or EL_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or EL_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or EL_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Tokens cannot be signed without a secret
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or EL_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Auth.SessionTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.sessionTTL")
	}
	if cfg.Auth.ResetTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.resetTTL")
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
