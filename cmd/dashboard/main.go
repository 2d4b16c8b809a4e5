package main

import (
	"context"
	"os/signal"
	"syscall"

	"airportops/config"
	"airportops/internal/dashboard"
	"airportops/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := dashboard.NewAPIClient(cfg.Dashboard.APIBaseURL)
	poller := dashboard.NewPoller(client, cfg.Dashboard.PollInterval)

	if err := dashboard.Run(ctx, cfg.Dashboard.Address, poller); err != nil {
		logger.Fatal("dashboard error", "error", err)
	}
}
