package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-intake-backend/config"
	_ "go-intake-backend/docs" // Important for Swagger
	v1 "go-intake-backend/internal/delivery/http/v1"
	"go-intake-backend/internal/usecase"
	"go-intake-backend/pkg/email"
	"go-intake-backend/pkg/logger"
	"go-intake-backend/pkg/ratelimit"
	"go-intake-backend/pkg/redis"
	"go-intake-backend/pkg/validation"
)

// @title           Intake Backend API
// @version         1.0
// @description     Contact and quote intake for the Clyvuum site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting intake backend", "port", cfg.Port, "env", cfg.Env)

	// 3. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting is per-instance", "error", err)
	}
	defer redis.Close()

	// 4. Setup Email Transport
	mailer := email.NewService(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email transport not fully configured - intake endpoints will answer 503")
	}

	// 5. Setup Rate Limiter
	limiter := ratelimit.New(cfg.RateLimitThreshold, cfg.RateLimitWindow())
	limiter.StartCleanup(5 * time.Minute)

	// 6. Setup UseCases
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Log.Warn("Unknown timezone, falling back to UTC", "timezone", cfg.Timezone)
		loc = time.UTC
	}
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(mailer, validate, cfg.SMTPFromEmail, cfg.OwnerEmail, loc)
	quoteUC := usecase.NewQuoteUsecase(mailer, validate, cfg.SMTPFromEmail, cfg.OwnerEmail, loc)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		QuoteUC:   quoteUC,
		Limiter:   limiter,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
