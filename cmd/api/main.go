package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobseeker-backend/config"
	_ "go-jobseeker-backend/docs" // Important for Swagger
	v1 "go-jobseeker-backend/internal/delivery/http/v1"
	"go-jobseeker-backend/internal/repository/postgres"
	"go-jobseeker-backend/internal/usecase"
	"go-jobseeker-backend/pkg/auth"
	"go-jobseeker-backend/pkg/database"
	"go-jobseeker-backend/pkg/logger"
	"go-jobseeker-backend/pkg/redis"
	"go-jobseeker-backend/pkg/supabase"
	"go-jobseeker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Seeker Backend API
// @version         1.0
// @description     Backend for the job-seeker application: Supabase auth, profiles, completion scoring.
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
	logger.Log.Info("Starting job-seeker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(context.Background(), cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Migrations applied")
	}

	// 4. Setup Redis (optional; rate limiter falls back without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 7. Setup Auth Provider (Supabase facade + JWKS)
	sb := supabase.New(supabase.Config{
		URL:          cfg.SupabaseUrl,
		APIKey:       cfg.SupabaseKey,
		RedirectBase: cfg.FrontendURL,
	})
	jwksProvider := auth.NewProvider(cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json")

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		HealthUC:     healthUC,
		Supabase:     sb,
		JWKSProvider: jwksProvider,
		Config:       cfg,
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
