package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"airportops/config"
	"airportops/internal/bootstrap"
	"airportops/internal/cache"
	"airportops/internal/database"
	"airportops/internal/kafka"
	"airportops/internal/logger"
	"airportops/internal/repository"
	"airportops/internal/service/amenities"
	"airportops/internal/service/bookings"
	"airportops/internal/service/flights"
	"airportops/internal/service/passengers"
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

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Fatal("run migrations", "error", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.HTTP.CacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	recRepo := repository.NewRecommendationRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	handlers := bootstrap.Handlers{
		Flights:    flights.NewFlightService(flightRepo, redisCache),
		Passengers: passengers.NewPassengerService(passengerRepo),
		Amenities:  amenities.NewAmenityService(serviceRepo),
		Bookings: bookings.NewBookingService(bookingRepo, flightRepo,
			bookings.WithProducer(producer, cfg.Kafka.EventsTopic)),
		Recs: recommendations.NewRecommendationService(recRepo, passengerRepo, flightRepo, bookingRepo,
			recommendations.WithProducer(producer, cfg.Kafka.EventsTopic)),
		Events: eventRepo,
		DB:     pool,
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
