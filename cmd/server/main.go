package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/ats-adapter/internal/app"
	"github.com/honeycarbs/ats-adapter/internal/config"
	"github.com/honeycarbs/ats-adapter/pkg/logging"
	"github.com/honeycarbs/ats-adapter/pkg/shutdown"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	a, err := app.InitializeApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", "err", err)
		os.Exit(1)
	}

	go func() {
		_ = shutdown.Graceful(
			context.Background(),
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			10*time.Second,
			logger,
			a.Server,
		)
	}()

	logger.Info("ATS adapter starting",
		"addr", a.Server.Addr(),
		"mode", a.Adapter.Mode().String(),
		"provider", a.Adapter.ProviderName(),
	)

	if err := a.Server.Run(); err != nil {
		logger.Error("HTTP shim exited with error", "err", err)
		os.Exit(1)
	}
	logger.Info("HTTP shim stopped")
}
