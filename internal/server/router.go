// Package server assembles the HTTP surface: services, handlers, middleware
// and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/config"
	_ "bookkeeper/internal/docs" // Import swagger docs
	"bookkeeper/internal/handlers"
	"bookkeeper/internal/metrics"
	"bookkeeper/internal/middleware"
	"bookkeeper/internal/services"
	"bookkeeper/internal/validator"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	DB     *gorm.DB
	Driver string
	Config *config.Config

	// Optional; defaults are used when nil.
	Hasher  auth.PasswordHasher
	Metrics *metrics.Recorder
}

// NewRouter wires services and handlers onto a new gin engine.
func NewRouter(d Deps) *gin.Engine {
	validator.Register()

	hasher := d.Hasher
	if hasher == nil {
		hasher = auth.NewBcryptHasher()
	}
	recorder := d.Metrics
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	tokens := auth.NewJWTManager(d.Config.JWTSecret, d.Config.JWTExpirationDur)

	// Initialize services
	userService := services.NewUserService(d.DB)
	authService := services.NewAuthService(userService, hasher, tokens)
	auditService := services.NewAuditService(d.DB)
	settingsService := services.NewSettingsService(d.DB)
	transactionService := services.NewTransactionService(d.DB)
	debtService := services.NewDebtService(d.DB)
	summaryService := services.NewSummaryService(d.DB)
	backupService := services.NewBackupService(d.DB, d.Driver)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService, recorder)
	debtHandler := handlers.NewDebtHandler(debtService, auditService, recorder)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	adminHandler := handlers.NewAdminHandler(backupService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(recorder.Middleware())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(recorder.Handler()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))

	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	debts := protected.Group("/debts")
	debts.GET("", debtHandler.ListDebts)
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("/balances", debtHandler.GetBalances)
	debts.GET("/:id", debtHandler.GetDebt)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	protected.GET("/summary", summaryHandler.GetSummary)

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(d.Config.AdminToken))
	admin.GET("/backup/json", adminHandler.ExportJSON)
	admin.GET("/backup/sqlite", adminHandler.ExportSQLite)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.AdminTokenHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Total-Count, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
