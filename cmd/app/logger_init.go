package main

import (
	"github.com/osse101/ReviewLottery_Go/internal/config"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// initLogger initializes the logger from app configuration. Source locations
// are only attached in development.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))
}
