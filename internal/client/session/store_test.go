package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfulhq/mindful/internal/client/mirror"
	"github.com/mindfulhq/mindful/internal/models"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*Store, mirror.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE snapshots (collection TEXT PRIMARY KEY, data BLOB NOT NULL)`)
	require.NoError(t, err)

	repo := mirror.NewSQLiteRepository(db)
	return NewStore(repo), repo
}

func TestGet_NoSession_ReturnsNil(t *testing.T) {
	s, _ := setupStore(t)

	u, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSetAndGet_RoundTripsIdentity(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	in := &models.User{ID: "u1", Username: "alice", Role: models.RoleUser, CreatedAt: 42}
	require.NoError(t, s.Set(ctx, in))

	out, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestSet_NilClearsSession(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, &models.User{ID: "u1", Username: "alice"}))
	require.NoError(t, s.Set(ctx, nil))

	u, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSet_LastWriteWins(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, &models.User{ID: "u1", Username: "alice"}))
	require.NoError(t, s.Set(ctx, &models.User{ID: "u2", Username: "bob"}))

	u, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u2", u.ID)
}

func TestGet_CorruptValue_TreatedAsAnonymous(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, mirror.KeySession, []byte(`{not json`)))

	u, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}
