package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"medico-backend/internal/config"
	"medico-backend/internal/routes"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}
	cfg := config.Load()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Connect DB (handle is injected, no package-level singleton)
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	// 3. Router + routes
	r := gin.Default()
	routes.SetupRoutes(r, db)

	// 4. Run Server
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
