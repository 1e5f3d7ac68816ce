package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 365, cfg.Detection.WindowDays)
	assert.Equal(t, 3, cfg.Detection.MinOccurrences)
	assert.InDelta(t, 0.20, cfg.Detection.DefaultCVThreshold, 1e-9)
	assert.InDelta(t, 0.05, cfg.Detection.LowTrustCVThreshold, 1e-9)
	assert.Equal(t, 1000, cfg.Projection.MaxSteps)
	assert.Equal(t, "db/migrations", cfg.Database.Migration.MigrationsPath)
	assert.Empty(t, cfg.AMQP.URL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DETECTION_WINDOW_DAYS", "180")
	t.Setenv("DETECTION_CV_THRESHOLD", "0.3")
	t.Setenv("PROJECTION_MAX_STEPS", "50")
	t.Setenv("WORKER_INTERVAL", "15m")
	t.Setenv("WORKER_METRICS_PORT", "9200")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PROJECTION_CALENDAR_MAX_DAYS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 180, cfg.Detection.WindowDays)
	assert.InDelta(t, 0.3, cfg.Detection.DefaultCVThreshold, 1e-9)
	assert.Equal(t, 50, cfg.Projection.MaxSteps)
	assert.Equal(t, 15*time.Minute, cfg.Worker.Interval)
	assert.Equal(t, "9200", cfg.Worker.MetricsPort)
	assert.False(t, cfg.Database.Migration.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 731, cfg.Projection.CalendarMaxDays)
}

func TestLoad_WorkerMetricsOff(t *testing.T) {
	t.Setenv("WORKER_METRICS_PORT", "OFF")

	cfg := Load()

	assert.Empty(t, cfg.Worker.MetricsPort)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "zero window", mutate: func(c *Config) { c.Detection.WindowDays = 0 }, want: "detection window"},
		{name: "one occurrence", mutate: func(c *Config) { c.Detection.MinOccurrences = 1 }, want: "at least 2 occurrences"},
		{name: "inverted thresholds", mutate: func(c *Config) { c.Detection.LowTrustCVThreshold = 0.5 }, want: "must not exceed"},
		{name: "zero steps", mutate: func(c *Config) { c.Projection.MaxSteps = 0 }, want: "max steps"},
		{name: "zero interval", mutate: func(c *Config) { c.Worker.Interval = 0 }, want: "worker interval"},
		{name: "zero rate", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, want: "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "ledger", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=ledger sslmode=disable", cfg.DSN())
}
