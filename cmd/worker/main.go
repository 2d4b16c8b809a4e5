package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"airportops/config"
	"airportops/internal/database"
	"airportops/internal/email"
	"airportops/internal/kafka"
	"airportops/internal/logger"
	"airportops/internal/repository"
	"airportops/internal/service/recommendations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	recService := recommendations.NewRecommendationService(
		repository.NewRecommendationRepository(pool),
		repository.NewPassengerRepository(pool),
		repository.NewFlightRepository(pool),
		repository.NewBookingRepository(pool),
		recommendations.WithEmailSender(email.NewSender()),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic)
	defer consumer.Close()

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.AirportEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				slog.Warn("skip malformed event", "error", err)
				return nil
			}
			slog.Info("airport event",
				"type", event.Type, "flight_id", event.FlightID, "description", event.Description)
			return nil
		})
		if err != nil && ctx.Err() == nil {
			slog.Error("consumer stopped", "error", err)
		}
	}()

	ticker := time.NewTicker(cfg.Worker.DispatchInterval)
	defer ticker.Stop()

	slog.Info("notification worker started",
		"topic", cfg.Kafka.EventsTopic, "dispatch_interval", cfg.Worker.DispatchInterval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("notification worker stopped")
			return
		case <-ticker.C:
			sent, err := recService.DispatchUnsent(ctx, cfg.Worker.DispatchBatch)
			if err != nil {
				slog.Error("dispatch recommendations", "error", err)
				continue
			}
			if sent > 0 {
				slog.Info("recommendations dispatched", "count", sent)
			}
		}
	}
}
