package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_PORT", "ODATA_BASE_URL", "ODATA_TIMEOUT", "CORS_ALLOWED_ORIGIN", "OTEL_ENDPOINT", "OTEL_ENABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.ODataBaseURL != "https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0" {
		t.Errorf("unexpected base url %s", cfg.ODataBaseURL)
	}
	if cfg.ODataTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.ODataTimeout)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("expected *, got %s", cfg.CORSOrigin)
	}
	if cfg.OTelEndpoint != "" || !cfg.OTelEnabled {
		t.Errorf("unexpected otel config: %q %v", cfg.OTelEndpoint, cfg.OTelEnabled)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("ODATA_BASE_URL", "http://localhost:1234/odata")
	t.Setenv("ODATA_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	od := cfg.OData()
	if od.BaseURL != "http://localhost:1234/odata" || od.Timeout != 5*time.Second {
		t.Errorf("unexpected odata config: %+v", od)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Addr())
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("ODATA_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}

	t.Setenv("ODATA_TIMEOUT", "-1s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}
