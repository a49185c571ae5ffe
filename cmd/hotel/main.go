package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/avstrong/hotel/internal/app"
	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/logger"
)

func main() {
	// A missing .env is fine; the config falls back to defaults.
	_ = godotenv.Load()

	conf := config.Load()
	l := logger.New(conf.AppEnv)

	var exitCode int

	if err := app.Run(l, conf); err != nil {
		l.Error().Err(err).Msg("Failed to run app")

		exitCode = 1
	}

	os.Exit(exitCode)
}
