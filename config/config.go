package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"airportops/internal/cache"
	"airportops/internal/database"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Database  database.Config `yaml:"database"`
	Redis     cache.Config    `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Generator GeneratorConfig `yaml:"generator"`
	Worker    WorkerConfig    `yaml:"worker"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type HTTPConfig struct {
	Address        string  `yaml:"address"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
	CacheTTL       int     `yaml:"cache_ttl_seconds"`
}

type DashboardConfig struct {
	Address      string        `yaml:"address"`
	APIBaseURL   string        `yaml:"api_base_url"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	EventsTopic string   `yaml:"events_topic"`
	GroupID     string   `yaml:"group_id"`
}

type GeneratorConfig struct {
	Seed               int64         `yaml:"seed"`
	FlightInterval     time.Duration `yaml:"flight_interval"`
	PassengerInterval  time.Duration `yaml:"passenger_interval"`
	ServiceInterval    time.Duration `yaml:"service_interval"`
	EventInterval      time.Duration `yaml:"event_interval"`
}

type WorkerConfig struct {
	DispatchInterval time.Duration `yaml:"dispatch_interval"`
	DispatchBatch    int           `yaml:"dispatch_batch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the yaml config and applies environment overrides on top. A
// missing .env file is fine; a missing yaml file falls back to defaults
// so the binaries run inside docker with env vars alone.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := getEnv("CONFIG_PATH", "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only setup
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8000",
			RateLimitRPS:   50,
			RateLimitBurst: 100,
			CacheTTL:       30,
		},
		Dashboard: DashboardConfig{
			Address:      ":8050",
			APIBaseURL:   "http://localhost:8000",
			PollInterval: 5 * time.Second,
		},
		Database: database.Config{
			Host: "localhost", Port: 5432,
			User: "airport", Password: "airport",
			Name: "airport", SSLMode: "disable",
			MaxConns: 10,
		},
		Redis: cache.Config{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			Brokers:     []string{"localhost:9092"},
			EventsTopic: "airport.events",
			GroupID:     "airport-notifications",
		},
		Generator: GeneratorConfig{
			FlightInterval:    30 * time.Second,
			PassengerInterval: 45 * time.Second,
			ServiceInterval:   60 * time.Second,
			EventInterval:     20 * time.Second,
		},
		Worker: WorkerConfig{
			DispatchInterval: time.Minute,
			DispatchBatch:    20,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Address = getEnv("HTTP_ADDRESS", cfg.HTTP.Address)
	cfg.Dashboard.Address = getEnv("DASHBOARD_ADDRESS", cfg.Dashboard.Address)
	cfg.Dashboard.APIBaseURL = getEnv("API_BASE_URL", cfg.Dashboard.APIBaseURL)
	cfg.Dashboard.PollInterval = getEnvDuration("DASHBOARD_POLL_INTERVAL", cfg.Dashboard.PollInterval)

	cfg.Database.Host = getEnv("DATABASE_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvInt("DATABASE_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DATABASE_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DATABASE_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("DATABASE_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnv("DATABASE_SSL_MODE", cfg.Database.SSLMode)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = []string{v}
	}
	cfg.Kafka.EventsTopic = getEnv("KAFKA_EVENTS_TOPIC", cfg.Kafka.EventsTopic)
	cfg.Kafka.GroupID = getEnv("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.Generator.Seed = int64(getEnvInt("GENERATOR_SEED", int(cfg.Generator.Seed)))
	cfg.Generator.FlightInterval = getEnvDuration("FLIGHT_UPDATE_INTERVAL", cfg.Generator.FlightInterval)
	cfg.Generator.PassengerInterval = getEnvDuration("PASSENGER_UPDATE_INTERVAL", cfg.Generator.PassengerInterval)
	cfg.Generator.ServiceInterval = getEnvDuration("SERVICE_UPDATE_INTERVAL", cfg.Generator.ServiceInterval)
	cfg.Generator.EventInterval = getEnvDuration("EVENT_UPDATE_INTERVAL", cfg.Generator.EventInterval)

	cfg.Worker.DispatchInterval = getEnvDuration("DISPATCH_INTERVAL", cfg.Worker.DispatchInterval)
	cfg.Worker.DispatchBatch = getEnvInt("DISPATCH_BATCH", cfg.Worker.DispatchBatch)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts either a Go duration ("30s") or a bare number of
// seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
