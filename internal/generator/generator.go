package generator

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"airportops/internal/metrics"
)

// Producer publishes operational events to the message bus. Publishing is
// best-effort: a broker outage never fails a tick.
type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Generator owns the synthetic data ticks. All randomness flows through a
// single seedable source so a run can be replayed in tests.
type Generator struct {
	store    Store
	rnd      *rand.Rand
	faker    *gofakeit.Faker
	producer Producer
	topic    string
	log      *slog.Logger
}

type Option func(*Generator)

func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
		g.faker = gofakeit.New(uint64(r.Int63()))
	}
}

func WithProducer(p Producer, topic string) Option {
	return func(g *Generator) {
		g.producer = p
		g.topic = topic
	}
}

func New(store Store, opts ...Option) *Generator {
	g := &Generator{
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		WithRand(NewRand(0))(g)
	}
	return g
}

// Task is one periodic generator job with its own interval and counters.
// State is mutated only by the scheduler goroutine that owns the task;
// the mutex guards external snapshots.
type Task struct {
	Name     string
	Interval time.Duration
	Tick     func(ctx context.Context) error

	mu       sync.Mutex
	lastRun  time.Time
	runs     int
	failures int
}

// TaskState is a point-in-time snapshot of a task's counters.
type TaskState struct {
	LastRun  time.Time
	Runs     int
	Failures int
}

func (t *Task) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TaskState{LastRun: t.lastRun, Runs: t.runs, Failures: t.failures}
}

func (t *Task) run(ctx context.Context, log *slog.Logger) {
	err := t.Tick(ctx)

	t.mu.Lock()
	t.lastRun = time.Now()
	t.runs++
	if err != nil {
		t.failures++
	}
	t.mu.Unlock()

	if err != nil {
		metrics.GeneratorTicks.WithLabelValues(t.Name, "error").Inc()
		log.Error("generator tick failed", "task", t.Name, "error", err)
		return
	}
	metrics.GeneratorTicks.WithLabelValues(t.Name, "ok").Inc()
}

// Intervals configures how often each tick fires.
type Intervals struct {
	Flights    time.Duration
	Passengers time.Duration
	Services   time.Duration
	Events     time.Duration
}

// Tasks binds the generator's ticks to their intervals.
func (g *Generator) Tasks(iv Intervals) []*Task {
	return []*Task{
		{Name: "flights", Interval: iv.Flights, Tick: g.FlightTick},
		{Name: "passengers", Interval: iv.Passengers, Tick: g.PassengerTick},
		{Name: "services", Interval: iv.Services, Tick: g.ServiceTick},
		{Name: "events", Interval: iv.Events, Tick: g.EventTick},
	}
}

// Scheduler runs each task on its own ticker goroutine. A failing tick is
// logged and counted; the next tick still fires.
type Scheduler struct {
	tasks []*Task
	log   *slog.Logger
}

func NewScheduler(tasks ...*Task) *Scheduler {
	return &Scheduler{tasks: tasks, log: slog.Default()}
}

// Run blocks until ctx is cancelled, then waits for in-flight ticks.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, task := range s.tasks {
		wg.Add(1)
		go func(t *Task) {
			defer wg.Done()

			s.log.Info("generator task started", "task", t.Name, "interval", t.Interval)
			t.run(ctx, s.log)

			ticker := time.NewTicker(t.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					t.run(ctx, s.log)
				}
			}
		}(task)
	}
	wg.Wait()
	s.log.Info("generator stopped")
}
