package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aakb/rasid-api/internal/application/service"
	"github.com/aakb/rasid-api/internal/config"
	"github.com/aakb/rasid-api/internal/infrastructure/database"
	"github.com/aakb/rasid-api/internal/infrastructure/render"
	"github.com/aakb/rasid-api/internal/infrastructure/repository"
	"github.com/aakb/rasid-api/internal/presentation/http/handler"
	"github.com/aakb/rasid-api/internal/presentation/http/routes"
	"github.com/aakb/rasid-api/pkg/email"
	"github.com/aakb/rasid-api/pkg/export"
	"github.com/aakb/rasid-api/pkg/logger"
	"github.com/aakb/rasid-api/pkg/printer"
	"github.com/aakb/rasid-api/pkg/receiptcard"
	"github.com/aakb/rasid-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.Must(cfg.App.Env)
	defer func() { _ = log.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg.Admin, log); err != nil {
		log.Warn("Failed to seed default data", zap.Error(err))
	}

	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		log.Warn("Unknown timezone, using UTC", zap.String("timezone", cfg.Database.Timezone), zap.Error(err))
		loc = time.UTC
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sadhakRepo := repository.NewSadhakRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn("Failed to initialize printer", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
		cfg.Printer.Type = "none"
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, cfg.Printer.DotsWidth)

	// Receipt rendering
	rasterizer, err := render.NewRasterizer(&cfg.Receipt, log)
	if err != nil {
		log.Fatal("Failed to initialize receipt renderer", zap.Error(err))
	}
	composer := render.NewComposer(&cfg.Receipt, receiptcard.DefaultLetterhead(), log)

	pipelineOpts := []export.Option{
		export.WithLogger(log.Named("export")),
		export.WithMetrics(export.NewMetrics(registry)),
		export.WithJPEGQuality(cfg.Receipt.JPEGQuality),
		export.WithSettleDelay(cfg.Receipt.SettleDelay),
		export.WithGuard(newGuard(cfg, log)),
	}
	if emailService.Configured() {
		pipelineOpts = append(pipelineOpts, export.WithSharer(email.NewReceiptSharer(emailService, cfg.Email.FromName)))
	}
	if printerService.GetStatus().Configured {
		pipelineOpts = append(pipelineOpts, export.WithSpooler(printer.NewSpooler(thermalPrinter, cfg.Printer.DotsWidth)))
	}
	pipeline := export.NewPipeline(composer, rasterizer, render.NewPDFWriter(&cfg.Receipt, log), pipelineOpts...)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, cfg.Admin.UserEmailDomain)
	sadhakService := service.NewSadhakService(sadhakRepo)
	receiptService := service.NewReceiptService(receiptRepo, sadhakRepo, loc)
	settingsService := service.NewSettingsService(settingsRepo, render.LoadLogo(&cfg.Receipt, log))
	reportService := service.NewReportService(reportRepo, loc)
	exportService := service.NewExportService(receiptService, settingsService, pipeline)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Sadhak:   handler.NewSadhakHandler(sadhakService),
		Receipt:  handler.NewReceiptHandler(receiptService, exportService),
		Export:   handler.NewExportHandler(exportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Report:   handler.NewReportHandler(reportService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router, rateLimiter := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          log,
		Metrics:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	defer rateLimiter.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go purgeIdempotencyKeys(ctx, idempotencyRepo.Purge, log)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("Starting server", zap.String("service", cfg.App.Name), zap.String("port", port), zap.String("env", cfg.App.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := thermalPrinter.Close(); err != nil {
		log.Warn("Failed to close printer", zap.Error(err))
	}
}

// newGuard shares the in-flight export guard through Redis when configured
func newGuard(cfg *config.Config, log *zap.Logger) export.Guard {
	if cfg.Redis.Addr == "" {
		return export.NewMemoryGuard()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, export guard is per process", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return export.NewMemoryGuard()
	}
	return export.NewRedisGuard(client, cfg.Receipt.GuardTTL)
}

func purgeIdempotencyKeys(ctx context.Context, purge func(context.Context) (int64, error), log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := purge(ctx)
			if err != nil {
				log.Warn("Failed to purge idempotency keys", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("Purged expired idempotency keys", zap.Int64("count", n))
			}
		}
	}
}
