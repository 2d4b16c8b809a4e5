package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"airportops/internal/domain"
	"airportops/internal/service/flights"
)

// APIClient reads the management API. Every call has a short timeout so a
// slow API degrades the dashboard instead of hanging it.
type APIClient struct {
	base string
	http *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		base: baseURL,
		http: &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *APIClient) Flights(ctx context.Context) ([]domain.Flight, error) {
	var out []domain.Flight
	err := c.get(ctx, "/api/flights?limit=50", &out)
	return out, err
}

func (c *APIClient) Services(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	err := c.get(ctx, "/api/services", &out)
	return out, err
}

func (c *APIClient) Events(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	err := c.get(ctx, "/api/events?limit=20", &out)
	return out, err
}

func (c *APIClient) Stats(ctx context.Context) (*flights.DashboardStats, error) {
	var out flights.DashboardStats
	err := c.get(ctx, "/api/flights/stats/dashboard", &out)
	return &out, err
}
