package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// FileName is the database file inside every World folder.
const FileName = "database.sqlite"

// BaselineVersion is the schema version that creates every entity table.
// Later versions only add to it.
const BaselineVersion int64 = 1

//go:embed migrations/*.sql
var migrationsFS embed.FS

var gooseOnce sync.Once

type DB struct {
	*sql.DB
	path string
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A World has a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{DB: db, path: dbPath}, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Migrate advances the schema to the latest embedded version.
func (db *DB) Migrate(ctx context.Context) error {
	initGoose()
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// MigrateTo advances the schema up to and including version.
func (db *DB) MigrateTo(ctx context.Context, version int64) error {
	initGoose()
	if err := goose.UpToContext(ctx, db.DB, "migrations", version); err != nil {
		return fmt.Errorf("migration to version %d failed: %w", version, err)
	}
	return nil
}

// Version reports the current schema version.
func (db *DB) Version(ctx context.Context) (int64, error) {
	initGoose()
	return goose.GetDBVersionContext(ctx, db.DB)
}

func (db *DB) Close() error {
	return db.DB.Close()
}

func initGoose() {
	gooseOnce.Do(func() {
		goose.SetBaseFS(migrationsFS)
		goose.SetLogger(goose.NopLogger())
		if err := goose.SetDialect("sqlite3"); err != nil {
			panic(err)
		}
	})
}
