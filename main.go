package main

import (
	"fmt"
	"os"

	"chicchariot/internal/config"
	"chicchariot/internal/email"
	"chicchariot/internal/handlers"
	"chicchariot/internal/logger"
	"chicchariot/internal/middleware"
	"chicchariot/internal/storage"
	"chicchariot/internal/store"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	zlog.Logger = log

	db, err := storage.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}
	defer db.Close()

	if err := storage.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	stores, err := store.NewStores(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize stores")
	}

	emailService := email.NewService(cfg)
	if emailService.IsEnabled() {
		log.Info().Msg("order notifications enabled")
	} else {
		log.Info().Msg("order notifications disabled, Mailgun not configured")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg))

	handlers.SetupRoutes(r, cfg, stores, emailService, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
