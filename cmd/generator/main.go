package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"airportops/config"
	"airportops/internal/database"
	"airportops/internal/generator"
	"airportops/internal/kafka"
	"airportops/internal/logger"
	"airportops/internal/metrics"
	"airportops/internal/repository"
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

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Fatal("run migrations", "error", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	store := generator.NewPGStore(
		repository.NewFlightRepository(pool),
		repository.NewPassengerRepository(pool),
		repository.NewServiceRepository(pool),
		repository.NewBookingRepository(pool),
		repository.NewEventRepository(pool),
	)

	gen := generator.New(store,
		generator.WithRand(generator.NewRand(cfg.Generator.Seed)),
		generator.WithProducer(producer, cfg.Kafka.EventsTopic),
	)

	if err := gen.EnsureBaseline(ctx); err != nil {
		logger.Fatal("seed baseline data", "error", err)
	}

	// metrics-only listener, the generator has no API of its own
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: ":9100", Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		_ = srv.ListenAndServe()
	}()

	scheduler := generator.NewScheduler(gen.Tasks(generator.Intervals{
		Flights:    cfg.Generator.FlightInterval,
		Passengers: cfg.Generator.PassengerInterval,
		Services:   cfg.Generator.ServiceInterval,
		Events:     cfg.Generator.EventInterval,
	})...)
	scheduler.Run(ctx)
}
