package main

import (
	"context"

	api "accounthub-backend/cmd/api"
	authdomain "accounthub-backend/internal/auth/domain"
	"accounthub-backend/internal/auth/password"
	authrepo "accounthub-backend/internal/auth/repository"
	"accounthub-backend/internal/auth/scheduler"
	"accounthub-backend/internal/auth/token"
	authusecase "accounthub-backend/internal/auth/usecase"
	uploadusecase "accounthub-backend/internal/upload/usecase"
	userusecase "accounthub-backend/internal/user/usecase"
	"accounthub-backend/pkg/config"
	"accounthub-backend/pkg/database"
	"accounthub-backend/pkg/logger"
	"accounthub-backend/pkg/mailer"
	"accounthub-backend/pkg/storage"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repositories and supporting components
	userRepo := authrepo.NewUserRepository(db)
	hasher := password.NewHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	resetMailer := mailer.NewMailer(cfg)

	objectStore, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object store")
	}

	// Initialize use cases (dependency injection)
	authUc := authusecase.NewAuthUsecase(userRepo, hasher, issuer, resetMailer, cfg)
	userUc := userusecase.NewUserUsecase(userRepo)
	uploadUc := uploadusecase.NewUploadUsecase(objectStore)

	// Hourly sweep of expired reset tokens
	cleanup := scheduler.NewResetTokenCleanup(userRepo)
	if err := cleanup.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start reset token cleanup")
	}
	defer cleanup.Stop()

	// Start server
	handler := api.NewHandler(authUc, userUc, uploadUc, cfg)
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
