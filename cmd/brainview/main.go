// Package main is the entry point for the brainview surface viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/brainview/internal/app"
	"github.com/Faultbox/brainview/internal/config"
	"github.com/Faultbox/brainview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("brainview failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== brainview ===",
		zap.String("subject", cfg.Subject.BaseDir),
		zap.String("mode", cfg.Subject.Mode),
	)
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}
