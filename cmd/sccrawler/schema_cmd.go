package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/store/ddl"
)

// newSchemaCmd prints CREATE TABLE statements for every live and SCD table
// in the requested dialect, mirroring the original's `sc-crawler schema
// <dialect>` command, which prints SQLAlchemy's CreateTable DDL compiled
// for the same five engines (spec.md §6.1).
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema <dialect>",
		Short:     "Print CREATE TABLE statements for every table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: ddl.Dialects,
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect := args[0]
			if !ddl.ValidDialect(dialect) {
				return fmt.Errorf("unknown dialect %q, must be one of %v", dialect, ddl.Dialects)
			}
			for _, t := range schema.Tables {
				fmt.Fprintln(cmd.OutOrStdout(), ddl.CreateTable(dialect, t))
			}
			for _, t := range schema.ScdTables {
				fmt.Fprintln(cmd.OutOrStdout(), ddl.CreateTable(dialect, t))
			}
			return nil
		},
	}
}
