package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/vitalsync/portal-api/config"
	"github.com/vitalsync/portal-api/internal/ai"
	"github.com/vitalsync/portal-api/internal/email"
	"github.com/vitalsync/portal-api/internal/handler"
	appointmentHandler "github.com/vitalsync/portal-api/internal/handler/appointment"
	authHandler "github.com/vitalsync/portal-api/internal/handler/auth"
	chatHandler "github.com/vitalsync/portal-api/internal/handler/chat"
	dashboardHandler "github.com/vitalsync/portal-api/internal/handler/dashboard"
	doctorHandler "github.com/vitalsync/portal-api/internal/handler/doctor"
	medicalrecordHandler "github.com/vitalsync/portal-api/internal/handler/medicalrecord"
	"github.com/vitalsync/portal-api/internal/middleware"
	"github.com/vitalsync/portal-api/internal/repository/postgres"
	"github.com/vitalsync/portal-api/internal/router"
	appointmentService "github.com/vitalsync/portal-api/internal/service/appointment"
	authService "github.com/vitalsync/portal-api/internal/service/auth"
	chatService "github.com/vitalsync/portal-api/internal/service/chat"
	dashboardService "github.com/vitalsync/portal-api/internal/service/dashboard"
	doctorService "github.com/vitalsync/portal-api/internal/service/doctor"
	medicalrecordService "github.com/vitalsync/portal-api/internal/service/medicalrecord"
	pkgauth "github.com/vitalsync/portal-api/pkg/auth"
	"github.com/vitalsync/portal-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare database schema")
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)
	chatRepo := postgres.NewChatRepository(db)

	// Optional redis cache for AI chat continuity
	var chatCache chatService.ContextCache
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redis url")
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()
		chatCache = chatService.NewRedisContextCache(redisClient)
	}

	// Services
	tokenSvc := pkgauth.NewJWTService(pkgauth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Expiry: time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
	})
	emailSvc := email.NewService(cfg.SMTP)
	authSvc := authService.NewService(userRepo, tokenSvc, emailSvc)
	doctorSvc := doctorService.NewService()
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorSvc, emailSvc)
	recordSvc := medicalrecordService.NewService(recordRepo)
	chatSvc := chatService.NewService(chatRepo, ai.NewOpenAIProvider(cfg.OpenAI), chatCache)
	dashboardSvc := dashboardService.NewService(appointmentRepo, recordRepo)

	// Handlers and router
	r := router.NewRouter(
		middleware.NewAuthMiddleware(authSvc),
		router.Handlers{
			Meta:          handler.NewHandler(version),
			Auth:          authHandler.NewHandler(authSvc),
			Doctor:        doctorHandler.NewHandler(doctorSvc),
			Appointment:   appointmentHandler.NewHandler(appointmentSvc),
			MedicalRecord: medicalrecordHandler.NewHandler(recordSvc),
			Chat:          chatHandler.NewHandler(chatSvc),
			Dashboard:     dashboardHandler.NewHandler(dashboardSvc),
		},
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORSConfig:     corsConfig(cfg),
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

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

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Security.AllowedOrigins
	}
	return corsCfg
}
