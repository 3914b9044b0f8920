package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/config"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/processor"
	"github.com/sealpoint/billing-api/internal/server"
)

func main() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "local"
	}
	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	engine, err := server.Build(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to build engine", zap.Error(err))
	}
	defer engine.Pool.Close()

	interval := 5 * time.Minute
	if raw := os.Getenv("PROCESSOR_INTERVAL"); raw != "" {
		if parsed, parseErr := time.ParseDuration(raw); parseErr == nil {
			interval = parsed
		}
	}

	daemon := processor.NewDaemon(engine.PeriodicJob, logger.Log, interval)
	daemon.Start()

	<-ctx.Done()
	daemon.Stop()
}
