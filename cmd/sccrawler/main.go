// Command sccrawler pulls cloud vendor inventory (regions, zones, servers,
// prices, storages) into a relational database, mirroring the original
// Python package's typer CLI (original_source/src/sc_crawler/cli.py) with
// cobra in place of typer and slog in place of the original's loguru.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sparecores/sc-crawler/internal/config"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:          "sccrawler",
		Short:        "Pull and query multi-vendor cloud server inventory",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (defaults/env used if unset)")

	root.AddCommand(newSchemaCmd(), newPullCmd(), newHashCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads --config if set, otherwise the env-overridden defaults,
// then validates either way — config.Validate's errors are always
// considered fatal at startup, never mid-pull.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the shared *slog.Logger every pipeline/runtime/inspector
// component already accepts, at the level configured by --log-level/
// SC_CRAWLER_LOG_LEVEL/config.LogLevel.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
