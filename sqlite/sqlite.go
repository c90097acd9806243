// Package sqlite provides SQLite-based storage implementations for educrawl
// services: the course store, its full-text shadow table, the synonym
// vocabulary, and crawl-run bookkeeping.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing with
	// "database is locked".
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode for file-based databases; not supported for in-memory ones.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist. The
// courses_fts shadow table is an external-content FTS5 index kept in sync
// with courses by triggers, so upserts never touch it directly.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS courses (
			course_id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			modality TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			price TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			value_proposal TEXT NOT NULL DEFAULT '',
			tutoria TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			raw_html TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			last_crawled_at TEXT NOT NULL
		);

		CREATE VIRTUAL TABLE IF NOT EXISTS courses_fts USING fts5(
			title, description, value_proposal, tutoria,
			content='courses', content_rowid='course_id'
		);

		CREATE TRIGGER IF NOT EXISTS courses_fts_insert AFTER INSERT ON courses BEGIN
			INSERT INTO courses_fts(rowid, title, description, value_proposal, tutoria)
			VALUES (new.course_id, new.title, new.description, new.value_proposal, new.tutoria);
		END;

		CREATE TRIGGER IF NOT EXISTS courses_fts_delete AFTER DELETE ON courses BEGIN
			INSERT INTO courses_fts(courses_fts, rowid, title, description, value_proposal, tutoria)
			VALUES ('delete', old.course_id, old.title, old.description, old.value_proposal, old.tutoria);
		END;

		CREATE TRIGGER IF NOT EXISTS courses_fts_update AFTER UPDATE ON courses BEGIN
			INSERT INTO courses_fts(courses_fts, rowid, title, description, value_proposal, tutoria)
			VALUES ('delete', old.course_id, old.title, old.description, old.value_proposal, old.tutoria);
			INSERT INTO courses_fts(rowid, title, description, value_proposal, tutoria)
			VALUES (new.course_id, new.title, new.description, new.value_proposal, new.tutoria);
		END;

		CREATE TABLE IF NOT EXISTS terms (
			term_id INTEGER PRIMARY KEY AUTOINCREMENT,
			term TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS synonyms (
			synonym_id INTEGER PRIMARY KEY AUTOINCREMENT,
			term_id INTEGER NOT NULL REFERENCES terms(term_id) ON DELETE CASCADE,
			synonym TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_synonyms_term_id ON synonyms(term_id);

		CREATE TABLE IF NOT EXISTS crawl_runs (
			run_id TEXT PRIMARY KEY,
			start_url TEXT NOT NULL,
			pages INTEGER NOT NULL DEFAULT 0,
			links_found INTEGER NOT NULL DEFAULT 0,
			saved INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL DEFAULT ''
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
