package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the process configuration loaded at startup.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL keeps scoring events
// in-process.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API listener configuration.
type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimit      float64  `yaml:"rate_limit"` // requests per second per IP
	RateBurst      int      `yaml:"rate_burst"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Issuer     string        `yaml:"issuer"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	ServiceName    string `yaml:"service_name"`
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
}

// envOverrides maps environment variables onto config fields. Empty values
// leave the field untouched.
var envOverrides = map[string]func(*Config, string){
	"DATABASE_URL":    func(c *Config, v string) { c.Postgres.DSN = v },
	"NATS_URL":        func(c *Config, v string) { c.NATS.URL = v },
	"HTTP_ADDRESS":    func(c *Config, v string) { c.HTTP.Address = v },
	"ALLOWED_ORIGINS": func(c *Config, v string) { c.HTTP.AllowedOrigins = splitList(v) },
	"JWT_SECRET":      func(c *Config, v string) { c.JWT.Secret = v },
	"JWT_ISSUER":      func(c *Config, v string) { c.JWT.Issuer = v },
	"ENV":             func(c *Config, v string) { c.Observability.Environment = v },
	"LOG_LEVEL":       func(c *Config, v string) { c.Observability.LogLevel = v },
	"METRICS_ENABLED": func(c *Config, v string) { c.Observability.MetricsEnabled = v != "false" },
}

// LoadConfig reads filename as YAML and layers environment overrides on top.
// A missing file falls back to environment-only configuration, which must
// carry DATABASE_URL and JWT_SECRET.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	default:
		// metrics stay on unless the environment turns them off
		cfg.Observability.MetricsEnabled = true
		for _, required := range []string{"DATABASE_URL", "JWT_SECRET"} {
			if os.Getenv(required) == "" {
				return nil, fmt.Errorf("%s environment variable not set", required)
			}
		}
	}

	for key, apply := range envOverrides {
		if v := os.Getenv(key); v != "" {
			apply(cfg, v)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.HTTP.Address, ":8080")
	setDefault(&c.Observability.ServiceName, "darts-league")
	setDefault(&c.Observability.Environment, "development")
	setDefault(&c.Observability.LogLevel, "info")
	if c.HTTP.RateLimit <= 0 {
		c.HTTP.RateLimit = 10
	}
	if c.HTTP.RateBurst <= 0 {
		c.HTTP.RateBurst = 20
	}
	if c.JWT.DefaultTTL <= 0 {
		c.JWT.DefaultTTL = 24 * time.Hour
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
