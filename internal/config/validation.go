package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ValidateDetailed performs comprehensive config validation beyond the
// basic Validate(), collecting every violation rather than stopping at
// the first one.
func ValidateDetailed(cfg *Config) *ValidationError {
	ve := &ValidationError{}

	if cfg.ConnectionString == "" {
		ve.Add("connectionString is required")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "":
	default:
		ve.Add(fmt.Sprintf("invalid logLevel %q", cfg.LogLevel))
	}

	if len(cfg.IncludeVendors) > 0 && len(cfg.ExcludeVendors) > 0 {
		ve.Add("includeVendors and excludeVendors are mutually exclusive")
	}

	if cfg.ChunkSize < 1 {
		ve.Add("chunkSize must be >= 1")
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Dir == "" {
			ve.Add("cache.dir is required when cache.enabled is true")
		}
		if cfg.Cache.TTL < 0 {
			ve.Add("cache.ttl must be >= 0")
		}
	}

	if cfg.Inspector.Enabled && cfg.Inspector.DataURL == "" {
		ve.Add("inspector.dataUrl is required when inspector.enabled is true")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
