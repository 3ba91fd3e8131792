// Package storage opens the authoritative SQLite store, applies embedded
// schema migrations and seeds the root admin account.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/mindfulhq/mindful/internal/common"
	"github.com/mindfulhq/mindful/internal/server/migrations"
)

// Open opens (creating if needed) the server database at path, with WAL
// journaling and foreign keys enforced, runs pending migrations and makes
// sure the root admin exists. The caller owns the returned handle.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		url.PathEscape(path))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open server db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate server db: %w", err)
	}

	if err := BootstrapAdmin(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// BootstrapAdmin seeds the root admin record. The insert ignores an
// already-present id, so restarts are harmless.
func BootstrapAdmin(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO users (id, username, role, createdAt) VALUES (?, ?, ?, ?)
	`, common.AdminID, common.AdminUsername, "admin", time.Now().UnixMilli())
	return err
}
