package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/sparecores/sc-crawler/internal/config"
	"github.com/sparecores/sc-crawler/internal/inspector"
	"github.com/sparecores/sc-crawler/internal/lookup"
	"github.com/sparecores/sc-crawler/internal/metrics"
	"github.com/sparecores/sc-crawler/internal/pipeline"
	"github.com/sparecores/sc-crawler/internal/runtime"
	"github.com/sparecores/sc-crawler/internal/seed"
	"github.com/sparecores/sc-crawler/internal/vendors/cache"
	"github.com/sparecores/sc-crawler/pkg/progress"
	"github.com/sparecores/sc-crawler/pkg/store"
)

// newPullCmd wires up and runs the ten-stage inventory pipeline across the
// selected vendors, mirroring the original's `sc-crawler pull` command
// (original_source/src/sc_crawler/cli.py): seed the static lookups, pull
// every selected vendor serially, optionally repeating on a cron schedule
// (SPEC_FULL.md §7 supplemented feature) instead of exiting after one run.
func newPullCmd() *cobra.Command {
	var includeVendor, excludeVendor []string
	var logLevel string
	var scd bool
	var cacheEnabled bool
	var cacheTTL time.Duration
	var schedule string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull inventory for the selected vendors into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(includeVendor) > 0 {
				cfg.IncludeVendors = includeVendor
			}
			if len(excludeVendor) > 0 {
				cfg.ExcludeVendors = excludeVendor
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("scd") {
				cfg.SCD = scd
			}
			if cmd.Flags().Changed("cache") {
				cfg.Cache.Enabled = cacheEnabled
			}
			if cmd.Flags().Changed("cache-ttl") {
				cfg.Cache.TTL = cacheTTL
			}
			if cmd.Flags().Changed("schedule") {
				cfg.Schedule = schedule
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			log := newLogger(cfg.LogLevel)

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", metrics.Handler())
				srv := &http.Server{Addr: metricsAddr, Handler: mux}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error("metrics server stopped", "error", err)
					}
				}()
				log.Info("serving metrics", "addr", metricsAddr)
			}

			engine, err := store.Open(store.Config{Dialect: "sqlite", Path: cfg.ConnectionString})
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer engine.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runOnce := func() error { return runPullOnce(ctx, cfg, engine, log) }

			if cfg.Schedule == "" {
				return runOnce()
			}

			c := cron.New()
			if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
				return fmt.Errorf("invalid --schedule %q: %w", cfg.Schedule, err)
			}
			if _, err := c.AddFunc(cfg.Schedule, func() {
				if err := runOnce(); err != nil {
					log.Error("scheduled pull failed", "error", err)
				}
			}); err != nil {
				return fmt.Errorf("scheduling pull: %w", err)
			}

			log.Info("running an initial pull before entering the schedule", "schedule", cfg.Schedule)
			if err := runOnce(); err != nil {
				log.Error("initial pull failed", "error", err)
			}

			c.Start()
			log.Info("pull scheduled", "cron", cfg.Schedule)
			<-ctx.Done()
			c.Stop()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&includeVendor, "include-vendor", nil, "pull only these vendor ids (repeatable)")
	cmd.Flags().StringSliceVar(&excludeVendor, "exclude-vendor", nil, "pull every vendor except these ids (repeatable)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn, or error")
	cmd.Flags().BoolVar(&scd, "scd", false, "write SCD Type 2 companion rows alongside the base tables")
	cmd.Flags().BoolVar(&cacheEnabled, "cache", false, "cache vendor API responses on disk between runs")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 0, "how long a cached vendor API response stays valid")
	cmd.Flags().StringVar(&schedule, "schedule", "", "cron expression for periodic pulling; unset pulls once and exits")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090); unset disables the metrics server")
	return cmd
}

// runPullOnce builds a fresh registry/dataset/cache and runs the pipeline
// exactly once. A fresh Dataset per run means the inspector archive is
// re-fetched (and re-extracted, then closed) for that run only, rather than
// cached in memory across a long-running --schedule process going stale.
func runPullOnce(ctx context.Context, cfg *config.Config, engine *store.Engine, log *slog.Logger) error {
	if err := seed.Run(ctx, engine); err != nil {
		return fmt.Errorf("seeding lookup tables: %w", err)
	}

	var dataset *inspector.Dataset
	if cfg.Inspector.Enabled {
		if cfg.Inspector.DataURL != "" {
			dataset = inspector.NewFromURL(cfg.Inspector.DataURL)
		} else {
			dataset = inspector.New()
		}
		defer dataset.Close()
	}

	var diskCache *cache.Cache
	if cfg.Cache.Enabled {
		diskCache = cache.New(cfg.Cache.Dir, cfg.Cache.TTL)
	}

	registry := buildRegistry(ctx, dataset, diskCache, log)

	available := make(map[string]bool, len(registry))
	for id := range registry {
		available[id] = true
	}
	vendorIDs, err := selectVendorIDs(cfg.IncludeVendors, cfg.ExcludeVendors, available)
	if err != nil {
		return err
	}
	adapters, err := registry.Resolve(vendorIDs)
	if err != nil {
		return err
	}

	vendors := make([]*runtime.Vendor, 0, len(adapters))
	for id, adapter := range adapters {
		base := lookup.Vendors[id]
		vendors = append(vendors, &runtime.Vendor{
			Vendor:  base,
			Tracker: &progress.Tracker{},
			Log:     log.With("vendor", id),
			Adapter: adapter,
		})
	}

	driver := &pipeline.Driver{Engine: engine, Opts: pipeline.Options{SCD: cfg.SCD}}
	results, err := driver.Run(ctx, vendors)
	for _, r := range results {
		if r.Err != nil {
			log.Error("vendor pull failed", "vendor", r.VendorID, "error", r.Err)
		} else {
			log.Info("vendor pull succeeded", "vendor", r.VendorID)
		}
	}
	return err
}
