package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/dermaconnect/derma-api/internal/config"
	"github.com/dermaconnect/derma-api/internal/email"
	"github.com/dermaconnect/derma-api/internal/handler"
	authHandler "github.com/dermaconnect/derma-api/internal/handler/auth"
	consultationHandler "github.com/dermaconnect/derma-api/internal/handler/consultation"
	contentHandler "github.com/dermaconnect/derma-api/internal/handler/content"
	dashboardHandler "github.com/dermaconnect/derma-api/internal/handler/dashboard"
	doctorHandler "github.com/dermaconnect/derma-api/internal/handler/doctor"
	"github.com/dermaconnect/derma-api/internal/middleware"
	"github.com/dermaconnect/derma-api/internal/repository/postgres"
	"github.com/dermaconnect/derma-api/internal/router"
	authService "github.com/dermaconnect/derma-api/internal/service/auth"
	consultationService "github.com/dermaconnect/derma-api/internal/service/consultation"
	dashboardService "github.com/dermaconnect/derma-api/internal/service/dashboard"
	doctorService "github.com/dermaconnect/derma-api/internal/service/doctor"
	"github.com/dermaconnect/derma-api/pkg/auth"
	"github.com/dermaconnect/derma-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:  logger.InfoLevel,
		Output: os.Stdout,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	consultationRepo := postgres.NewConsultationRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	jwtSvc := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Expiry:        cfg.JWT.Expiry(),
		RefreshExpiry: cfg.JWT.RefreshExpiry(),
	})

	emailSvc := email.NewNoopService()
	if cfg.Email.Enabled {
		emailSvc = email.NewGomailService(email.Config{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
		})
	}

	authSvc := authService.NewService(userRepo, patientRepo, jwtSvc, emailSvc, appLogger)
	consultationSvc := consultationService.NewService(consultationRepo, patientRepo, doctorRepo, eventRepo, outboxRepo, appLogger)
	doctorSvc := doctorService.NewService(doctorRepo)
	dashboardSvc := dashboardService.NewService(consultationRepo, doctorRepo, userRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r, err := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		consultationHandler.NewHandler(consultationSvc),
		doctorHandler.NewHandler(doctorSvc),
		dashboardHandler.NewHandler(dashboardSvc),
		contentHandler.NewHandler(),
		handler.NewHealthHandler(db),
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    corsConfig,
			Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			MetricsPrefix: "derma_api",
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	appLogger.Info("server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
