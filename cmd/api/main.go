package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/datifyy/datifyy-api/internal/config"
	"github.com/datifyy/datifyy-api/internal/domain/admin"
	"github.com/datifyy/datifyy-api/internal/domain/preferences"
	"github.com/datifyy/datifyy-api/internal/domain/profile"
	"github.com/datifyy/datifyy-api/internal/domain/trustscore"
	"github.com/datifyy/datifyy-api/internal/domain/user"
	"github.com/datifyy/datifyy-api/internal/middleware"
	"github.com/datifyy/datifyy-api/internal/pkg/database"
	"github.com/datifyy/datifyy-api/internal/pkg/jwt"
	"github.com/datifyy/datifyy-api/internal/pkg/logger"
	pkgresponse "github.com/datifyy/datifyy-api/internal/pkg/response"
	"github.com/datifyy/datifyy-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Datifyy API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// Image storage is optional in development; avatar upload URLs are
	// disabled when R2 is not configured.
	var avatarStorage profile.AvatarStorage
	if cfg.R2AccountID != "" {
		imageStorage, err := storage.NewImageStorage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create R2 storage")
		}
		avatarStorage = imageStorage
	} else {
		log.Warn().Msg("R2 not configured, avatar uploads disabled")
	}

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	preferencesRepo := preferences.NewRepository(db)
	trustScoreRepo := trustscore.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	// ---------- Services ----------
	trustScoreService := trustscore.NewService(trustScoreRepo)
	profileService := profile.NewService(profileRepo, redis, avatarStorage, trustScoreService, cfg.StatsCacheTTL)
	preferencesService := preferences.NewService(preferencesRepo)

	adminJWTService := admin.NewJWTService(cfg.JWTSecret, cfg.AdminJWTTTL)
	adminService := admin.NewService(adminRepo, adminJWTService)

	// ---------- Handlers ----------
	profileHandler := profile.NewHandler(profileService)
	preferencesHandler := preferences.NewHandler(preferencesService)
	trustScoreHandler := trustscore.NewHandler(trustScoreService)
	adminHandler := admin.NewHandler(adminService)
	adminUserHandler := admin.NewUserHandler(db, userRepo, adminService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/user-profile/partner-preferences", preferencesHandler.Routes(authMiddleware))
		r.Mount("/user-profile", profileHandler.Routes(authMiddleware))
	})

	r.Mount("/api/admin", admin.Routes(adminHandler, adminUserHandler, trustScoreHandler, adminJWTService, adminService))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
