package main

import (
	"github.com/joho/godotenv"

	"syndicpro/internal/app"
	"syndicpro/internal/config"
	"syndicpro/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	a, err := app.New(cfg)
	if err != nil {
		logger.Fatal("failed to start application", "error", err.Error())
	}

	if err := a.Run(); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}
