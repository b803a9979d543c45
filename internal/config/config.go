// Package config загружает конфигурацию сервиса из переменных окружения.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/shaiso/kamermoties/internal/odata"
)

// Config — конфигурация kamermoties-api.
type Config struct {
	// Port — порт HTTP сервера.
	Port string `env:"API_PORT" envDefault:"8080"`

	// ODataBaseURL — корень OData API Tweede Kamer.
	ODataBaseURL string `env:"ODATA_BASE_URL" envDefault:"https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0"`

	// ODataTimeout — таймаут одного запроса к upstream.
	ODataTimeout time.Duration `env:"ODATA_TIMEOUT" envDefault:"30s"`

	// CORSOrigin — разрешённый origin фронтенда, "*" — любой.
	CORSOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`

	// OTelEndpoint — OTLP/HTTP endpoint. Пустой — трейсинг выключен.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`

	// ShutdownTimeout — время на graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load читает конфигурацию из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ODataTimeout <= 0 {
		return Config{}, fmt.Errorf("ODATA_TIMEOUT must be positive, got %s", cfg.ODataTimeout)
	}
	return cfg, nil
}

// Addr — адрес для http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// OData — конфигурация клиента upstream.
func (c Config) OData() odata.Config {
	return odata.Config{
		BaseURL: c.ODataBaseURL,
		Timeout: c.ODataTimeout,
	}
}
