package clientconfig

import (
	"fmt"
	"time"

	"appointment-system/internal/client/resilience"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "APPOINTMENT_CLIENT"

type Config struct {
	BaseURL          string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	APIPrefix        string        `envconfig:"API_PREFIX" default:"/api/v1"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"60s"`
	RetryCount       int           `envconfig:"RETRY_COUNT" default:"3"`
	BaseDelay        time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`
	BreakerThreshold uint32        `envconfig:"BREAKER_THRESHOLD" default:"5"`
	BreakDuration    time.Duration `envconfig:"BREAK_DURATION" default:"30s"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file, then the APPOINTMENT_CLIENT_* variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process client env config: %w", err)
	}
	return cfg, nil
}

func (c Config) Resilience() resilience.Config {
	return resilience.Config{
		Name:             "appointment-api",
		MaxRetries:       c.RetryCount,
		BaseDelay:        c.BaseDelay,
		FailureThreshold: c.BreakerThreshold,
		BreakDuration:    c.BreakDuration,
	}
}
