package mirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindfulhq/mindful/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Read(ctx context.Context, collection string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE collection = ?`, collection).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot[%s]: %w", collection, err)
	}
	return data, nil
}

func (r *SQLiteRepository) Write(ctx context.Context, collection string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (collection, data) VALUES (?, ?)
		ON CONFLICT(collection) DO UPDATE SET data = excluded.data
	`, collection, data)
	if err != nil {
		return fmt.Errorf("failed to write snapshot[%s]: %w", collection, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, collection string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE collection = ?`, collection)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot[%s]: %w", collection, err)
	}
	return nil
}

// InTx runs fn against a transactional view of the repository. When the
// repository is already transaction-scoped, fn runs in the current scope.
func (r *SQLiteRepository) InTx(ctx context.Context, fn func(Repository) error) error {
	db, ok := r.db.(*sql.DB)
	if !ok {
		return fn(r)
	}
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(NewSQLiteRepository(tx))
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
