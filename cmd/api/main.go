package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventback/auth-server/internal/api"
	"github.com/eventback/auth-server/internal/infrastructure/config"
	"github.com/eventback/auth-server/internal/infrastructure/db/mongo"
	"github.com/eventback/auth-server/internal/password"
	"github.com/eventback/auth-server/internal/token"
	"github.com/eventback/auth-server/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Auth Server API
// @version      1.0
// @description  User registration, credential verification and role-gated access.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env files are optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Database.URI(),
		Database: cfg.Database.Name,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("mongo index bootstrap failed")
	}

	issuer := token.NewJWT(cfg.JWTSecret, cfg.TokenTTL)
	hasher := password.NewBcryptHasher(bcrypt.DefaultCost)

	e := api.NewRouter(db, issuer, hasher, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logg.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	waitForSignal(logg)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func waitForSignal(logg zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logg.Info().Str("signal", sig.String()).Msg("shutting down")
}
