package routes

import (
	"net/http"
	"time"

	"github.com/aakb/rasid-api/internal/config"
	"github.com/aakb/rasid-api/internal/domain/enum"
	domainRepo "github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/internal/presentation/http/handler"
	"github.com/aakb/rasid-api/internal/presentation/http/middleware"
	"github.com/aakb/rasid-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Sadhak   *handler.SadhakHandler
	Receipt  *handler.ReceiptHandler
	Export   *handler.ExportHandler
	Settings *handler.SettingsHandler
	Report   *handler.ReportHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
	// Metrics serves /metrics when set
	Metrics http.Handler
}

// Setup creates the Gin router and registers all routes. The returned
// limiter must be stopped on shutdown.
func Setup(h *Handlers, deps *Deps) (*gin.Engine, *middleware.UserRateLimiter) {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	// Per-user rate limiter
	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: requestsPerSecond(deps.Cfg.RateLimit),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router, rateLimiter
}

func requestsPerSecond(cfg config.RateLimitConfig) float64 {
	if cfg.Duration <= 0 {
		return 0
	}
	return float64(cfg.Requests) / float64(cfg.Duration)
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	admin := middleware.RequireRole(enum.UserRoleAdmin)
	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}

	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", admin, h.Settings.UpdateSettings)

	// Reports
	protected.GET("/reports/summary", admin, h.Report.GetSummary)

	// Printer
	protected.GET("/printer/status", h.Printer.GetStatus)

	registerUserRoutes(protected, h, admin)
	registerSadhakRoutes(protected, h, admin, idempotency)
	registerReceiptRoutes(protected, h, admin, idempotency)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers, admin gin.HandlerFunc) {
	users := protected.Group("/users", admin)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.PUT("/:id/password", h.User.ResetPassword)
	}
}

func registerSadhakRoutes(protected *gin.RouterGroup, h *Handlers, admin gin.HandlerFunc, idempotency middleware.IdempotencyConfig) {
	sadhaks := protected.Group("/sadhaks")
	{
		sadhaks.GET("", h.Sadhak.List)
		sadhaks.POST("", middleware.Idempotency(idempotency), h.Sadhak.Create)
		sadhaks.GET("/:id", h.Sadhak.Get)
		sadhaks.PUT("/:id", admin, h.Sadhak.Update)
		sadhaks.DELETE("/:id", admin, h.Sadhak.Delete)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers, admin gin.HandlerFunc, idempotency middleware.IdempotencyConfig) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", middleware.IdempotencyRequired(idempotency), h.Receipt.Create)
		receipts.GET("/next-number", h.Receipt.NextNumber)
		receipts.POST("/preview", h.Export.PreviewDraft)
		receipts.GET("/:no", h.Receipt.Get)
		receipts.PUT("/:no", admin, h.Receipt.Update)
		receipts.DELETE("/:no", admin, h.Receipt.Delete)

		// Export
		receipts.GET("/:no/preview", h.Receipt.Preview)
		receipts.GET("/:no/export", h.Export.Export)
		receipts.POST("/:no/share", h.Export.Share)
		receipts.GET("/:no/print", h.Export.Print)
		receipts.POST("/:no/print/thermal", h.Export.PrintThermal)
	}
}
