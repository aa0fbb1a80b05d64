package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
)

// Config holds the heritagegraph configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Graph   GraphConfig   `yaml:"graph"`
	Search  SearchConfig  `yaml:"search"`
	Locale  LocaleConfig  `yaml:"locale"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"` // empty disables authentication
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// GraphConfig holds triple store settings.
type GraphConfig struct {
	Endpoint         string `yaml:"endpoint"` // SPARQL query endpoint
	TimeoutSec       int    `yaml:"timeout_sec"`
	ReadinessTimeout int    `yaml:"readiness_timeout_sec"`
}

// SearchConfig holds search index settings. Search is disabled when no
// address is configured.
type SearchConfig struct {
	Addresses  []string `yaml:"addresses"`
	Index      string   `yaml:"index"`
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	APIKey     string   `yaml:"api_key"`
	TimeoutSec int      `yaml:"timeout_sec"`
}

// Enabled reports whether a search index is configured.
func (c SearchConfig) Enabled() bool { return len(c.Addresses) > 0 }

// LocaleConfig holds the locale used when a request does not name one.
type LocaleConfig struct {
	Default string `yaml:"default"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Graph.TimeoutSec <= 0 {
		c.Graph.TimeoutSec = 20
	}
	if c.Graph.ReadinessTimeout <= 0 {
		c.Graph.ReadinessTimeout = 10
	}
	c.Search.Addresses = slices.DeleteFunc(c.Search.Addresses, func(a string) bool {
		return strings.TrimSpace(a) == ""
	})
	c.Auth.APIKeys = slices.DeleteFunc(c.Auth.APIKeys, func(k string) bool {
		return strings.TrimSpace(k) == ""
	})
	if c.Search.Index == "" {
		c.Search.Index = "heritage"
	}
	if c.Search.TimeoutSec <= 0 {
		c.Search.TimeoutSec = 10
	}
	if c.Locale.Default == "" {
		c.Locale.Default = string(domain.DefaultLocale)
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Graph.Endpoint == "" {
		return fmt.Errorf("graph.endpoint is required")
	}
	if u, err := url.Parse(c.Graph.Endpoint); err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("graph.endpoint must be an absolute URL, got %q", c.Graph.Endpoint)
	}
	if c.Search.Enabled() {
		if err := db.ValidateIndexName(c.Search.Index); err != nil {
			return fmt.Errorf("search.index: %w", err)
		}
	}
	if _, err := domain.ParseLocale(c.Locale.Default); err != nil {
		return fmt.Errorf("locale.default: %w", err)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
