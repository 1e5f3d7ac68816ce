package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	RateLimit  RateLimitConfig
	Detection  DetectionConfig
	Projection ProjectionConfig
	Worker     WorkerConfig
	AMQP       AMQPConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migration       MigrationConfig
}

// MigrationConfig controls the golang-migrate runner executed at startup
type MigrationConfig struct {
	AutoMigrate    bool
	SeedDatabase   bool
	MigrationsPath string
	SeedsPath      string
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// DetectionConfig holds the pattern detector thresholds
type DetectionConfig struct {
	WindowDays          int
	MinOccurrences      int
	DefaultCVThreshold  float64
	LowTrustCVThreshold float64
}

type ProjectionConfig struct {
	// MaxSteps bounds how far a single projection may advance a recurrence
	MaxSteps int
	// CalendarMaxDays bounds the width of a calendar window request
	CalendarMaxDays int
}

type WorkerConfig struct {
	Interval time.Duration
	// MetricsPort serves /metrics for the worker; WORKER_METRICS_PORT=off leaves it empty and disables the listener
	MetricsPort string
}

// AMQPConfig is optional; an empty URL disables event publishing
type AMQPConfig struct {
	URL      string
	Exchange string
	Queue    string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			Migration: MigrationConfig{
				AutoMigrate:    getBoolEnv("AUTO_MIGRATE", true),
				SeedDatabase:   getBoolEnv("SEED_DATABASE", false),
				MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
				SeedsPath:      getEnv("SEEDS_PATH", "db/seeds"),
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 300),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 50),
		},
		Detection: DetectionConfig{
			WindowDays:          getIntEnv("DETECTION_WINDOW_DAYS", 365),
			MinOccurrences:      getIntEnv("DETECTION_MIN_OCCURRENCES", 3),
			DefaultCVThreshold:  getFloatEnv("DETECTION_CV_THRESHOLD", 0.20),
			LowTrustCVThreshold: getFloatEnv("DETECTION_LOW_TRUST_CV_THRESHOLD", 0.05),
		},
		Projection: ProjectionConfig{
			MaxSteps:        getIntEnv("PROJECTION_MAX_STEPS", 1000),
			CalendarMaxDays: getIntEnv("PROJECTION_CALENDAR_MAX_DAYS", 731),
		},
		Worker: WorkerConfig{
			Interval:    getDurationEnv("WORKER_INTERVAL", time.Hour),
			MetricsPort: getOptionalEnv("WORKER_METRICS_PORT", "9091"),
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "ledger"),
			Queue:    getEnv("AMQP_QUEUE", "occurrences.materialized"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate rejects configurations the services cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("rate limit must be positive, got %d", c.RateLimit.RequestsPerMinute))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimit.Burst))
	}
	if c.Detection.WindowDays <= 0 {
		errs = append(errs, fmt.Errorf("detection window must be positive, got %d days", c.Detection.WindowDays))
	}
	if c.Detection.MinOccurrences < 2 {
		errs = append(errs, fmt.Errorf("detection needs at least 2 occurrences to measure a gap, got %d", c.Detection.MinOccurrences))
	}
	if c.Detection.DefaultCVThreshold <= 0 || c.Detection.LowTrustCVThreshold <= 0 {
		errs = append(errs, errors.New("detection CV thresholds must be positive"))
	}
	if c.Detection.LowTrustCVThreshold > c.Detection.DefaultCVThreshold {
		errs = append(errs, errors.New("low trust CV threshold must not exceed the default threshold"))
	}
	if c.Projection.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("projection max steps must be positive, got %d", c.Projection.MaxSteps))
	}
	if c.Projection.CalendarMaxDays <= 0 {
		errs = append(errs, fmt.Errorf("calendar max days must be positive, got %d", c.Projection.CalendarMaxDays))
	}
	if c.Worker.Interval <= 0 {
		errs = append(errs, fmt.Errorf("worker interval must be positive, got %s", c.Worker.Interval))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getOptionalEnv is getEnv where the value "off" means unset
func getOptionalEnv(key, defaultValue string) string {
	value := getEnv(key, defaultValue)
	if strings.EqualFold(value, "off") {
		return ""
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
