// Package store is the persistence engine: it opens the database, tracks
// schema, and exposes the upsert/mark-inactive/SCD-duplicate/hash
// operations the inventory pipeline drives one stage at a time.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/sparecores/sc-crawler/pkg/schema"
	"github.com/sparecores/sc-crawler/pkg/store/ddl"
)

// Config configures how the Engine opens its connection.
type Config struct {
	// Dialect selects the DDL and parameter-placeholder style. Only
	// "sqlite" opens a live connection in this implementation (spec.md
	// §6.1's other four dialects are schema-generation targets only, per
	// SPEC_FULL.md §6.1 — no driver for them ships in the examples this
	// module was grounded on).
	Dialect string
	// Path is the SQLite database file. ":memory:" is accepted for tests.
	Path string
}

// Engine wraps *sql.DB plus the dialect needed to generate correct DDL and
// upsert statements. Grounded on the teacher's store.DB
// (internal/store/db.go), generalized from a single fixed schema to the
// schema.Tables/schema.ScdTables registry.
type Engine struct {
	db      *sql.DB
	dialect string
}

// Open creates the database's parent directory (if any), opens the
// connection, sets the same WAL/busy-timeout/synchronous pragmas the
// teacher sets, and creates every table in schema.Tables and
// schema.ScdTables that does not already exist.
func Open(cfg Config) (*Engine, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store: database path is empty")
	}
	dialect := cfg.Dialect
	if dialect == "" {
		dialect = "sqlite"
	}
	if dialect != "sqlite" {
		return nil, fmt.Errorf("store: live connections are only supported for the sqlite dialect, got %q", dialect)
	}

	if dir := filepath.Dir(cfg.Path); dir != "." && cfg.Path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: setting pragma %q: %w", p, err)
		}
	}

	e := &Engine{db: db, dialect: dialect}
	if err := e.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating tables: %w", err)
	}
	return e, nil
}

// RawDB returns the underlying *sql.DB for components that need direct
// access (e.g. a diagnostics command).
func (e *Engine) RawDB() *sql.DB {
	return e.db
}

// Close closes the underlying connection.
func (e *Engine) Close() error {
	return e.db.Close()
}

func (e *Engine) createTables() error {
	stmts := make([]string, 0, len(schema.Tables)+len(schema.ScdTables))
	for _, t := range schema.Tables {
		stmts = append(stmts, ddl.CreateTable(e.dialect, t))
	}
	for _, t := range schema.ScdTables {
		stmts = append(stmts, ddl.CreateTable(e.dialect, t))
	}
	for _, stmt := range stmts {
		if _, err := e.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Session is a transaction-scoped handle bound to one pipeline stage: per
// spec.md §4.2, one stage equals one commit, so Begin/Commit/Rollback are
// the only state transitions a caller drives explicitly.
type Session struct {
	tx      *sql.Tx
	dialect string
}

// Begin starts a new Session. The caller must Commit or Rollback it.
func (e *Engine) Begin(ctx context.Context) (*Session, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: beginning transaction: %w", err)
	}
	return &Session{tx: tx, dialect: e.dialect}, nil
}

func (s *Session) Commit() error {
	return s.tx.Commit()
}

func (s *Session) Rollback() error {
	return s.tx.Rollback()
}
