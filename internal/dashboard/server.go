package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"airportops/internal/middleware"
)

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>CDG Operations Dashboard</title>
  <meta http-equiv="refresh" content="5">
  <style>
    body { font-family: sans-serif; margin: 2rem; background: #f4f6f8; }
    h1 { margin-bottom: 0; }
    .offline { color: #b00020; }
    table { border-collapse: collapse; margin-top: 1rem; width: 100%; background: #fff; }
    th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
    th { background: #1a355e; color: #fff; }
  </style>
</head>
<body>
  <h1>Paris CDG Operations</h1>
  <p>{{if .Online}}live data{{else}}<span class="offline">API offline, showing simulated data</span>{{end}}
     — refreshed {{.FetchedAt.Format "15:04:05"}}</p>
  {{with .Stats}}<p>{{.TotalFlights}} flights, average occupancy {{printf "%.1f" .AverageOccupancy}}%</p>{{end}}
  <table>
    <tr><th>Flight</th><th>Destination</th><th>Departure</th><th>Status</th><th>Gate</th><th>Seats</th></tr>
    {{range .Flights}}
    <tr><td>{{.FlightNumber}}</td><td>{{.Destination}}</td>
        <td>{{.DepartureTime.Format "15:04"}}</td><td>{{.Status}}</td>
        <td>{{.Gate}}</td><td>{{.OccupiedSeats}}/{{.Capacity}}</td></tr>
    {{end}}
  </table>
  <table>
    <tr><th>Service</th><th>Type</th><th>Terminal</th><th>Usage</th></tr>
    {{range .Services}}
    <tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.Terminal}}</td><td>{{.CurrentUsage}}/{{.Capacity}}</td></tr>
    {{end}}
  </table>
  <table>
    <tr><th>Time</th><th>Event</th><th>Description</th></tr>
    {{range .Events}}
    <tr><td>{{.Timestamp.Format "15:04:05"}}</td><td>{{.EventType}}</td><td>{{.Description}}</td></tr>
    {{end}}
  </table>
</body>
</html>`))

// NewRouter serves the HTML page and a JSON endpoint with the same
// snapshot for programmatic use.
func NewRouter(poller *Poller) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(c.Writer, poller.Current()); err != nil {
			slog.Error("render dashboard", "error", err)
		}
	})
	router.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, poller.Current())
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// Run serves the dashboard and keeps the poller refreshing until the
// context is cancelled.
func Run(ctx context.Context, addr string, poller *Poller) error {
	go poller.Run(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(poller),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("dashboard started", "address", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("dashboard server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown dashboard: %w", err)
		}
		return nil
	}
}
