package reminders

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfulhq/mindful/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id        TEXT PRIMARY KEY,
  username  TEXT UNIQUE,
  role      TEXT,
  createdAt INTEGER
);
CREATE TABLE reminders (
  id        TEXT PRIMARY KEY,
  userId    TEXT,
  title     TEXT,
  description TEXT,
  dueDate   TEXT,
  priority  TEXT,
  category  TEXT,
  completed INTEGER,
  createdAt INTEGER,
  FOREIGN KEY(userId) REFERENCES users(id) ON DELETE CASCADE
);
INSERT INTO users (id, username, role, createdAt) VALUES ('u1', 'alice', 'user', 1), ('u2', 'bob', 'user', 2);
`)
	require.NoError(t, err)
	return db
}

func sample(id, userID string) models.Reminder {
	return models.Reminder{
		ID: id, UserID: userID, Title: "title " + id, Description: "d",
		DueDate: "2026-08-29T10:00:00Z", Priority: models.PriorityHigh,
		Category: models.CategoryWork, Completed: false, CreatedAt: 10,
	}
}

func TestCreateAndListByUser_RoundTrips(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	want := sample("t1", "u1")
	require.NoError(t, r.Create(ctx, want))
	require.NoError(t, r.Create(ctx, sample("t2", "u2")))

	got, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestListAll_ReturnsEveryReminder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sample("t1", "u1")))
	require.NoError(t, r.Create(ctx, sample("t2", "u2")))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCreate_UnknownUser_FailsReferentialIntegrity(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Create(context.Background(), sample("t1", "nobody"))
	require.Error(t, err)
}

func TestUpdate_ReplacesMutableFieldsAndStoresCompletedAsInt(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	rec := sample("t1", "u1")
	require.NoError(t, r.Create(ctx, rec))

	rec.Title = "updated"
	rec.Completed = true
	require.NoError(t, r.Update(ctx, rec))

	var raw int
	require.NoError(t, db.QueryRow(`SELECT completed FROM reminders WHERE id='t1'`).Scan(&raw))
	assert.Equal(t, 1, raw)

	got, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "updated", got[0].Title)
	assert.True(t, bool(got[0].Completed))
}

func TestDelete_RemovesRecord(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sample("t1", "u1")))
	require.NoError(t, r.Delete(ctx, "t1"))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
