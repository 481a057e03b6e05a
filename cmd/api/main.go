package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-backend/config"
	_ "job-portal-backend/docs" // Important for Swagger
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/events"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/redis"
	"job-portal-backend/pkg/storage"
	"job-portal-backend/pkg/token"
	"job-portal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Portal API
// @version         1.0
// @description     Backend for a job portal using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (events + rate limiting). The service still runs
	// without it, with degraded behavior.
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, events disabled and rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	var publisher domain.EventPublisher
	if redis.Client() != nil {
		p, err := events.NewPublisher(redis.Client())
		if err != nil {
			logger.Log.Warn("Event publisher disabled", "error", err)
		} else {
			publisher = p
		}
	}

	// 5. Setup S3 storage for resume uploads.
	var fileStorage usecase.FileStorage
	s3cfg := storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
	}
	if s3cfg.IsConfigured() {
		store, err := storage.New(context.Background(), s3cfg)
		if err != nil {
			logger.Log.Warn("File storage disabled", "error", err)
		} else {
			fileStorage = store
		}
	} else {
		logger.Log.Warn("S3 not configured - resume uploads will be unavailable")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, publisher)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, userRepo, fileStorage, validate)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, userRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		RecruiterUC: recruiterUC,
		Tokens:      tokens,
		Validate:    validate,
		Config:      cfg,
	})

	// 9. Start Server
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
