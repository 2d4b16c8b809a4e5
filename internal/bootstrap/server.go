package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"airportops/api"
	"airportops/config"
	"airportops/internal/metrics"
	"airportops/internal/middleware"
	"airportops/internal/repository"
	"airportops/internal/service/amenities"
	"airportops/internal/service/bookings"
	"airportops/internal/service/flights"
	"airportops/internal/service/passengers"
	"airportops/internal/service/recommendations"
)

// Handlers groups everything the REST surface needs.
type Handlers struct {
	Flights    flights.FlightUseCase
	Passengers passengers.PassengerUseCase
	Amenities  amenities.AmenityUseCase
	Bookings   bookings.BookingUseCase
	Recs       recommendations.RecommendationUseCase
	Events     repository.EventRepository
	DB         *pgxpool.Pool
}

// NewRouter assembles the gin engine with the shared middleware chain and
// all route groups.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS(), middleware.Metrics())
	if cfg.HTTP.RateLimitRPS > 0 {
		router.Use(middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst).Middleware())
	}

	health := api.NewHealthHandler(h.DB)
	router.GET("/health", health.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := router.Group("/api")
	api.NewFlightHandler(h.Flights).Register(apiGroup.Group("/flights"))
	api.NewPassengerHandler(h.Passengers).Register(apiGroup.Group("/passengers"))
	api.NewServiceHandler(h.Amenities).Register(apiGroup.Group("/services"))
	api.NewBookingHandler(h.Bookings).Register(apiGroup.Group("/bookings"))
	api.NewRecommendationHandler(h.Recs).Register(apiGroup.Group("/recommendations"))
	api.NewEventHandler(h.Events).Register(apiGroup.Group("/events"))

	return router
}

// Run serves the REST API and blocks until the context is cancelled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(cfg, h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("api server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown api server: %w", err)
		}
		slog.Info("api server stopped")
		return nil
	}
}
