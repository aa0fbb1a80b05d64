package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:   HTTPConfig{Port: 8080},
		Graph:  GraphConfig{Endpoint: "http://localhost:7200/repositories/heritage"},
		Search: SearchConfig{Addresses: []string{"http://localhost:9200"}, Index: "heritage"},
		Locale: LocaleConfig{Default: "en"},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_GraphEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "localhost:7200", "/repositories/heritage"} {
		t.Run("endpoint="+endpoint, func(t *testing.T) {
			cfg := validConfig()
			cfg.Graph.Endpoint = endpoint

			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error for endpoint %q", endpoint)
			}
		})
	}
}

func TestValidate_SearchIndexName(t *testing.T) {
	cfg := validConfig()
	cfg.Search.Index = "Heritage"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for uppercase index name")
	}

	cfg.Search.Addresses = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("index name must not be checked when search is disabled: %v", err)
	}
}

func TestValidate_UnsupportedLocale(t *testing.T) {
	cfg := validConfig()
	cfg.Locale.Default = "fr"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported locale")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("expected WriteTimeoutSec=30, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Graph.TimeoutSec != 20 {
		t.Errorf("expected Graph.TimeoutSec=20, got %d", cfg.Graph.TimeoutSec)
	}
	if cfg.Graph.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Graph.ReadinessTimeout)
	}
	if cfg.Search.Index != "heritage" {
		t.Errorf("expected Index='heritage', got %q", cfg.Search.Index)
	}
	if cfg.Search.TimeoutSec != 10 {
		t.Errorf("expected Search.TimeoutSec=10, got %d", cfg.Search.TimeoutSec)
	}
	if cfg.Locale.Default != "en" {
		t.Errorf("expected Locale.Default='en', got %q", cfg.Locale.Default)
	}
	if cfg.Search.Enabled() {
		t.Error("search must be disabled without addresses")
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Graph:  GraphConfig{TimeoutSec: 5},
		Search: SearchConfig{Index: "collections"},
		Locale: LocaleConfig{Default: "nl"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Graph.TimeoutSec != 5 {
		t.Errorf("expected Graph.TimeoutSec=5, got %d", cfg.Graph.TimeoutSec)
	}
	if cfg.Search.Index != "collections" {
		t.Errorf("expected Index='collections', got %q", cfg.Search.Index)
	}
	if cfg.Locale.Default != "nl" {
		t.Errorf("expected Locale.Default='nl', got %q", cfg.Locale.Default)
	}
}

func TestApplyDefaults_DropsBlankEntries(t *testing.T) {
	cfg := Config{
		Search: SearchConfig{Addresses: []string{"", " "}},
		Auth:   AuthConfig{APIKeys: []string{"", "k1"}},
	}
	cfg.ApplyDefaults()

	if cfg.Search.Enabled() {
		t.Errorf("search must be disabled for blank addresses, got %v", cfg.Search.Addresses)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "k1" {
		t.Errorf("api keys = %v", cfg.Auth.APIKeys)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := `
http:
  port: 9090
graph:
  endpoint: ${TEST_SPARQL_ENDPOINT}
search:
  addresses: ["${TEST_ES_ADDR:-http://localhost:9200}"]
locale:
  default: nl
`
	if err := os.WriteFile(filepath.Join(dir, "config", "unit.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("TEST_SPARQL_ENDPOINT", "http://graph:7200/repositories/heritage")

	cfg, err := Load("unit")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Graph.Endpoint != "http://graph:7200/repositories/heritage" {
		t.Errorf("endpoint = %q", cfg.Graph.Endpoint)
	}
	if len(cfg.Search.Addresses) != 1 || cfg.Search.Addresses[0] != "http://localhost:9200" {
		t.Errorf("addresses = %v", cfg.Search.Addresses)
	}
	if cfg.Locale.Default != "nl" {
		t.Errorf("locale = %q", cfg.Locale.Default)
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatal("expected error for missing config")
	}
}
