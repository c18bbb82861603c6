package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_ReturnsExpectedDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.SCD {
		t.Error("SCD = false, want true")
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true")
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want %v", cfg.Cache.TTL, 24*time.Hour)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want %d", cfg.ChunkSize, 500)
	}
	if !cfg.Inspector.Enabled {
		t.Error("Inspector.Enabled = false, want true")
	}
}

func TestDefaultConfig_Validate_ReturnsNil(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() returned error: %v", err)
	}
}

func TestLoadFromFile_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yamlContent := []byte(`connectionString: postgres://localhost/sc_crawler
includeVendors: ["aws", "gcp"]
logLevel: debug
`)
	if err := os.WriteFile(path, yamlContent, 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile(%q) returned error: %v", path, err)
	}

	if cfg.ConnectionString != "postgres://localhost/sc_crawler" {
		t.Errorf("ConnectionString = %q, want %q", cfg.ConnectionString, "postgres://localhost/sc_crawler")
	}
	if len(cfg.IncludeVendors) != 2 || cfg.IncludeVendors[0] != "aws" {
		t.Errorf("IncludeVendors = %v, want [aws gcp]", cfg.IncludeVendors)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadFromFile_MergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	yamlContent := []byte(`logLevel: warn
`)
	if err := os.WriteFile(path, yamlContent, 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile(%q) returned error: %v", path, err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want default %d", cfg.ChunkSize, 500)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want default %v", cfg.Cache.TTL, 24*time.Hour)
	}
}

func TestLoadFromFile_InvalidPath(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("LoadFromFile with invalid path expected error, got nil")
	}
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	badContent := []byte(`logLevel: [invalid
  yaml: {{broken
`)
	if err := os.WriteFile(path, badContent, 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	_, err := LoadFromFile(path)
	if err == nil {
		t.Fatal("LoadFromFile with invalid YAML expected error, got nil")
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogLevel = level
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() with logLevel %q returned error: %v", level, err)
			}
		})
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with invalid logLevel expected error, got nil")
	}
}

func TestValidate_MissingConnectionString(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConnectionString = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with missing connectionString expected error, got nil")
	}
}

func TestValidate_IncludeAndExcludeVendorsMutuallyExclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeVendors = []string{"aws"}
	cfg.ExcludeVendors = []string{"gcp"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with both includeVendors and excludeVendors expected error, got nil")
	}
}

func TestValidate_ChunkSizeMustBePositive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with chunkSize=0 expected error, got nil")
	}
}

func TestValidateDetailed_CollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConnectionString = ""
	cfg.LogLevel = "verbose"
	cfg.IncludeVendors = []string{"aws"}
	cfg.ExcludeVendors = []string{"gcp"}

	ve := ValidateDetailed(cfg)
	if ve == nil {
		t.Fatal("expected validation errors, got nil")
	}
	if len(ve.Errors) < 3 {
		t.Errorf("expected at least 3 collected errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}
