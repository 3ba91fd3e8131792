package reminders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindfulhq/mindful/internal/dbx"
	"github.com/mindfulhq/mindful/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectColumns = `id, userId, title, description, dueDate, priority, category, completed, createdAt`

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM reminders WHERE userId = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select reminders: %w", err)
	}
	return scanReminders(rows)
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM reminders`)
	if err != nil {
		return nil, fmt.Errorf("failed to select reminders: %w", err)
	}
	return scanReminders(rows)
}

func (r *SQLiteRepository) Create(ctx context.Context, rec models.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, userId, title, description, dueDate, priority, category, completed, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Title, rec.Description, rec.DueDate, rec.Priority, rec.Category, boolToInt(rec.Completed), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, rec models.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reminders SET title=?, description=?, dueDate=?, priority=?, category=?, completed=? WHERE id=?
	`, rec.Title, rec.Description, rec.DueDate, rec.Priority, rec.Category, boolToInt(rec.Completed), rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	defer rows.Close()

	result := make([]models.Reminder, 0)
	for rows.Next() {
		var rec models.Reminder
		var completed int
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Description,
			&rec.DueDate, &rec.Priority, &rec.Category, &completed, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Completed = models.IntBool(completed != 0)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func boolToInt(b models.IntBool) int {
	if b {
		return 1
	}
	return 0
}
