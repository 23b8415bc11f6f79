package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Provider Provider   `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_CORS_ALLOWED_ORIGINS"`
}

// Redis is optional; when Addr is empty the provider limiter runs in process.
type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Provider holds the flight provider (SerpAPI) configuration.
type Provider struct {
	APIKey     string        `mapstructure:"SERPAPI_KEY"`
	BaseURL    string        `mapstructure:"SERPAPI_BASE_URL"`
	Timeout    time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
	MaxRetries int           `mapstructure:"SERPAPI_MAX_RETRIES"`
	RateLimit  int           `mapstructure:"SERPAPI_RATE_LIMIT"`
}

type Search struct {
	DefaultOrigin string `mapstructure:"SEARCH_DEFAULT_ORIGIN"`
}

// LogValue lists the settings worth logging at startup. The key is
// emitted as api_key so the log handler redacts it.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("log_level", string(c.LogLevel)),
		slog.Int("http_port", c.HTTP.Port),
		slog.Duration("http_timeout", c.HTTP.Timeout),
		slog.String("provider_base_url", c.Provider.BaseURL),
		slog.String("api_key", c.Provider.APIKey),
		slog.Duration("provider_timeout", c.Provider.Timeout),
		slog.Int("provider_max_retries", c.Provider.MaxRetries),
		slog.Int("provider_rate_limit", c.Provider.RateLimit),
		slog.Bool("redis_limiter", c.Redis.Addr != ""),
		slog.String("default_origin", c.Search.DefaultOrigin),
	)
}
