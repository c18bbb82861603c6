package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparecores/sc-crawler/pkg/store"
)

// newHashCmd exposes store.Engine.Hash as `sccrawler hash`, mirroring the
// original's hash_database CLI entry point (original_source/src/
// sc_crawler/utils.py), supplemented beyond spec.md per SPEC_FULL.md §7:
// row/table/database-level introspection selected with --level.
func newHashCmd() *cobra.Command {
	var level string
	var ignore string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print a content hash of the database at row, table, or database granularity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			e, err := store.Open(store.Config{Dialect: "sqlite", Path: cfg.ConnectionString})
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer e.Close()

			var ignored []string
			if ignore != "" {
				ignored = strings.Split(ignore, ",")
			}

			result, err := e.Hash(store.HashLevel(strings.ToUpper(level)), ignored)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&level, "level", "database", "hash granularity: row, table, or database")
	cmd.Flags().StringVar(&ignore, "ignore", "", "comma-separated column names to exclude from the hash (default: observed_at)")
	return cmd
}
