package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"
	"waterreminder/internal/core/domain/reminder"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint16   `env:"PORT" envDefault:"4317"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:1420,tauri://localhost"`
	AppName        string   `env:"APP_NAME" envDefault:"waterreminder"`

	// SettingsPath defaults to settings.json in the user config directory.
	SettingsPath     string `env:"SETTINGS_PATH"`
	SettingsRedisURL string `env:"SETTINGS_REDIS_URL"`
	SettingsRedisKey string `env:"SETTINGS_REDIS_KEY" envDefault:"waterreminder:settings:interval"`

	TickPeriod      time.Duration `env:"TICK_PERIOD" envDefault:"1s"`
	DefaultInterval uint32        `env:"DEFAULT_INTERVAL" envDefault:"3600"`
	SseStreamID     string        `env:"SSE_STREAM_ID" envDefault:"main"`

	AmqpURL      string `env:"AMQP_URL"`
	AmqpExchange string `env:"AMQP_EXCHANGE" envDefault:"waterreminder.events"`

	SentryDsn       *url.URL      `env:"SENTRY_DSN"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`
}

// Load reads the configuration from the environment. Variables from a .env
// file in the working directory are applied first, without overriding the
// ones already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TickPeriod <= 0 {
		return fmt.Errorf("TICK_PERIOD must be positive, got %s", c.TickPeriod)
	}
	if c.TickPeriod > time.Minute {
		return fmt.Errorf("TICK_PERIOD must not exceed 1m, got %s", c.TickPeriod)
	}
	if err := reminder.Interval(c.DefaultInterval).Validate(); err != nil {
		return fmt.Errorf("invalid DEFAULT_INTERVAL value: %w", err)
	}
	if c.AppName == "" {
		return fmt.Errorf("APP_NAME must not be empty")
	}
	if c.SseStreamID == "" {
		return fmt.Errorf("SSE_STREAM_ID must not be empty")
	}
	return nil
}

func (c *Config) Interval() reminder.Interval {
	return reminder.Interval(c.DefaultInterval)
}

func (c *Config) Address() string {
	return fmt.Sprintf("127.0.0.1:%d", c.Port)
}
