package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pawfessional/store-api/internal/database"
	"github.com/pawfessional/store-api/internal/handlers"
	"github.com/pawfessional/store-api/internal/routes"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("could not load .env file, relying on system environment variables")
	}

	db, err := database.OpenDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	logger.Info().Msg("database connection pool established")

	app := &handlers.Handlers{
		DB:     db,
		Logger: logger,
	}

	router := routes.SetupRouter(app, logger)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Info().Str("addr", addr).Msg("starting Pawfessional store API")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
