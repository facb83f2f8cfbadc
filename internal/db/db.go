// Package db opens the SQLite file that holds the gallery working list, the
// contact messages and the audit trail.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// DB is a migrated SQLite handle. Writes that read before they write go
// through WithTx so they do not interleave.
type DB struct {
	*sql.DB
	path string
	wmu  sync.Mutex
}

// Open creates or opens the database file at path and migrates it.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	return open(path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path, 0)
}

// OpenMemory opens a private in-memory database for tests and dry runs.
func OpenMemory() (*DB, error) {
	// Every pooled connection to ":memory:" is a separate database.
	return open(":memory:", ":memory:", 1)
}

func open(dsn, path string, maxConns int) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(maxConns)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging %s: %w", path, err)
	}
	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	return d, nil
}

// Path returns the file the database was opened from.
func (d *DB) Path() string { return d.path }

// WithTx runs fn in a transaction, committing when it returns nil.
// Calls are serialised.
func (d *DB) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	d.wmu.Lock()
	defer d.wmu.Unlock()

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// SchemaVersion returns the number of migrations applied.
func (d *DB) SchemaVersion() (int, error) {
	var v int
	err := d.QueryRow("PRAGMA user_version").Scan(&v)
	return v, err
}

// LatestVersion is the schema version a freshly migrated database reports.
func LatestVersion() int { return len(migrations) }

// migrate applies the migrations newer than PRAGMA user_version.
func (d *DB) migrate() error {
	v, err := d.SchemaVersion()
	if err != nil {
		return err
	}
	for i := v; i < len(migrations); i++ {
		if _, err := d.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := d.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return err
		}
	}
	return nil
}

// migrations are applied in order and never edited once released.
var migrations = []string{
	`CREATE TABLE gallery_items (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		position   INTEGER NOT NULL,
		src        TEXT NOT NULL,
		title      TEXT NOT NULL,
		tag        TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT (datetime('now'))
	);
	CREATE INDEX idx_gallery_position ON gallery_items(position);
	CREATE INDEX idx_gallery_src ON gallery_items(src);`,

	`CREATE TABLE contact_messages (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		body        TEXT NOT NULL,
		remote_addr TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	);
	CREATE INDEX idx_contact_created ON contact_messages(created_at);`,

	`CREATE TABLE audit_entries (
		id        TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		actor     TEXT NOT NULL,
		action    TEXT NOT NULL,
		subject   TEXT NOT NULL DEFAULT '',
		detail    TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX idx_audit_timestamp ON audit_entries(timestamp);
	CREATE INDEX idx_audit_action ON audit_entries(action);`,
}
