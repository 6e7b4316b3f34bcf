// Package main is the entry point for the waterline surface query demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/waterline/internal/config"
	"github.com/Faultbox/waterline/internal/logger"
	"github.com/Faultbox/waterline/internal/sim"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Waterline ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	s, err := sim.New(cfg)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}

	if err := s.Run(); err != nil {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("done")
}
