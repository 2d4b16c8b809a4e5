package dashboard

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"airportops/internal/domain"
	"airportops/internal/service/flights"
)

// Snapshot is what the dashboard renders: either live API data or a
// synthetic stand-in when the API is down.
type Snapshot struct {
	Flights   []domain.Flight         `json:"flights"`
	Services  []domain.Service        `json:"services"`
	Events    []domain.Event          `json:"events"`
	Stats     *flights.DashboardStats `json:"stats"`
	Online    bool                    `json:"online"`
	FetchedAt time.Time               `json:"fetched_at"`
}

// Poller refreshes the snapshot on an interval. Any fetch failure flips
// the whole snapshot to fallback data rather than mixing live and
// synthetic records.
type Poller struct {
	client   *APIClient
	interval time.Duration
	rnd      *rand.Rand
	log      *slog.Logger

	mu      sync.RWMutex
	current Snapshot
}

func NewPoller(client *APIClient, interval time.Duration) *Poller {
	p := &Poller{
		client:   client,
		interval: interval,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      slog.Default(),
	}
	p.current = FallbackSnapshot(p.rnd)
	return p
}

func (p *Poller) Current() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Refresh fetches one snapshot from the API, falling back to synthetic
// data on any error.
func (p *Poller) Refresh(ctx context.Context) {
	snap, err := p.fetch(ctx)
	if err != nil {
		p.log.Warn("api unreachable, using fallback data", "error", err)
		snap = FallbackSnapshot(p.rnd)
	}

	p.mu.Lock()
	p.current = snap
	p.mu.Unlock()
}

func (p *Poller) fetch(ctx context.Context) (Snapshot, error) {
	fl, err := p.client.Flights(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	services, err := p.client.Services(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	events, err := p.client.Events(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	stats, err := p.client.Stats(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Flights:   fl,
		Services:  services,
		Events:    events,
		Stats:     stats,
		Online:    true,
		FetchedAt: time.Now(),
	}, nil
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}
