package routes

import (
	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authService usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	ledgerHandler *handler.LedgerHandler,
	streamHandler *handler.StreamHandler,
	adminHandler *handler.AdminHandler,
	logger coreport.Logger,
) {
	requireSession := middleware.Authenticated(authService, logger)

	// Account and session routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.SignUp)
		authRoutes.POST("/login", authHandler.LogIn)
		authRoutes.POST("/logout", requireSession, authHandler.LogOut)
		authRoutes.POST("/password-reset", authHandler.RequestPasswordReset)
		authRoutes.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	}

	router.GET("/me", requireSession, authHandler.Me)

	// Per-user ledger routes
	ledgerRoutes := router.Group("/ledger", requireSession)
	{
		ledgerRoutes.GET("", ledgerHandler.View)
		ledgerRoutes.GET("/stream", streamHandler.Stream)
		ledgerRoutes.POST("/transactions", ledgerHandler.AddTransaction)
		ledgerRoutes.DELETE("/transactions/:id", ledgerHandler.DeleteTransaction)
	}

	// Admin routes; the role gate lives in the use case so a non-admin gets
	// a 403 from any of these
	adminRoutes := router.Group("/admin", requireSession)
	{
		adminRoutes.GET("/users", adminHandler.ListUsers)
		adminRoutes.GET("/users/:id/transactions", adminHandler.UserTransactions)
		adminRoutes.GET("/transactions", adminHandler.SweepTransactions)
		adminRoutes.PUT("/users/:id/role", adminHandler.SetRole)
		adminRoutes.DELETE("/users/:id", adminHandler.DeleteUser)
		adminRoutes.DELETE("/users/:id/transactions/:txId", adminHandler.DeleteTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
