package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for sc-crawler.
type Config struct {
	ConnectionString string        `yaml:"connectionString"`
	IncludeVendors   []string      `yaml:"includeVendors"`
	ExcludeVendors   []string      `yaml:"excludeVendors"`
	LogLevel         string        `yaml:"logLevel"` // "debug", "info", "warn", "error"
	SCD              bool          `yaml:"scd"`       // write SCD Type 2 companion rows alongside the base tables
	Inspector        InspectorConfig `yaml:"inspector"`
	Cache            CacheConfig   `yaml:"cache"`
	Schedule         string        `yaml:"schedule"` // cron expression for periodic pull; empty disables scheduling
	ChunkSize        int           `yaml:"chunkSize"`
	StageTimeout     time.Duration `yaml:"stageTimeout"`
}

type InspectorConfig struct {
	Enabled bool   `yaml:"enabled"`
	DataURL string `yaml:"dataUrl"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// DefaultConfig returns a Config with sensible defaults. The connection
// string and vendor selection are left for the caller/environment to set
// (SC_CRAWLER_CONNECTION_STRING, SC_CRAWLER_VENDORS).
func DefaultConfig() *Config {
	cfg := &Config{
		ConnectionString: "sc-crawler.db",
		LogLevel:         "info",
		SCD:              true,
		Inspector: InspectorConfig{
			Enabled: true,
			DataURL: "https://github.com/SpareCores/sc-inspector-data/archive/refs/heads/main.zip",
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".sc-crawler-cache",
			TTL:     24 * time.Hour,
		},
		ChunkSize:    500,
		StageTimeout: 10 * time.Minute,
	}
	cfg.applyEnvOverrides()
	return cfg
}

// LoadFromFile loads config from a YAML file, overlaying on defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides fills in empty fields from environment variables, the
// same accommodation the teacher's config loader makes for values set by
// a deploy platform rather than a checked-in file.
func (c *Config) applyEnvOverrides() {
	if c.ConnectionString == "" || c.ConnectionString == "sc-crawler.db" {
		if v := os.Getenv("SC_CRAWLER_CONNECTION_STRING"); v != "" {
			c.ConnectionString = v
		}
	}
	if len(c.IncludeVendors) == 0 {
		if v := os.Getenv("SC_CRAWLER_VENDORS"); v != "" {
			c.IncludeVendors = splitCSV(v)
		}
	}
	if c.LogLevel == "" || c.LogLevel == "info" {
		if v := os.Getenv("SC_CRAWLER_LOG_LEVEL"); v != "" {
			c.LogLevel = v
		}
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.ConnectionString == "" {
		return fmt.Errorf("connectionString is required")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logLevel %q: must be debug, info, warn, or error", c.LogLevel)
	}

	if len(c.IncludeVendors) > 0 && len(c.ExcludeVendors) > 0 {
		return fmt.Errorf("includeVendors and excludeVendors are mutually exclusive")
	}

	if c.ChunkSize < 1 {
		return fmt.Errorf("chunkSize must be >= 1, got %d", c.ChunkSize)
	}

	if c.Cache.Enabled && c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0, got %v", c.Cache.TTL)
	}

	return nil
}
