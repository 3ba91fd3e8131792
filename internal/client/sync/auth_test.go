package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfulhq/mindful/internal/common"
	"github.com/mindfulhq/mindful/internal/models"
)

func TestLogin_AdminBypassHint_GrantsRootAdmin(t *testing.T) {
	remote := &fakeRemote{}
	e, _ := setupEngine(t, remote)
	ctx := context.Background()

	u, err := e.Login(ctx, "  Admin ", "password@2026")
	require.NoError(t, err)
	assert.Equal(t, common.AdminID, u.ID)
	assert.Equal(t, models.RoleAdmin, u.Role)

	// session persisted
	current, err := e.GetCurrentAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, common.AdminID, current.ID)

	// admin record forwarded to the backend
	require.Len(t, remote.users, 1)
	assert.Equal(t, common.AdminID, remote.users[0].ID)
}

func TestLogin_AdminBypass_WorksOffline(t *testing.T) {
	e, _ := setupEngine(t, &fakeRemote{down: true})

	u, err := e.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, common.AdminID, u.ID)
}

func TestLogin_PasswordEqualsUsername(t *testing.T) {
	remote := &fakeRemote{users: []models.User{{ID: "u1", Username: "alice", Role: models.RoleUser}}}
	e, _ := setupEngine(t, remote)

	u, err := e.Login(context.Background(), "Alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestLogin_FixedBypassValue(t *testing.T) {
	remote := &fakeRemote{users: []models.User{{ID: "u1", Username: "alice", Role: models.RoleUser}}}
	e, _ := setupEngine(t, remote)

	u, err := e.Login(context.Background(), "alice", "admin")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestLogin_WrongPassword_RemoteUp_Fails(t *testing.T) {
	remote := &fakeRemote{users: []models.User{{ID: "u1", Username: "alice", Role: models.RoleUser}}}
	e, _ := setupEngine(t, remote)
	ctx := context.Background()

	_, err := e.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	current, err := e.GetCurrentAuth(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLogin_EmptyUsername_Fails(t *testing.T) {
	e, _ := setupEngine(t, &fakeRemote{})

	_, err := e.Login(context.Background(), "   ", "whatever")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_RemoteDown_GrantsTransientIdentity(t *testing.T) {
	remote := &fakeRemote{down: true}
	e, _ := setupEngine(t, remote)
	ctx := context.Background()

	u, err := e.Login(ctx, "Carol", "whatever")
	require.NoError(t, err)
	assert.Equal(t, common.TransientUserID, u.ID)
	assert.Equal(t, "carol", u.Username)
	assert.Equal(t, models.RoleUser, u.Role)

	// transient identity is session-only: never in the user snapshot
	remote.down = false
	users, err := e.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLogin_RemoteDown_LocalMatchStillWorks(t *testing.T) {
	e, _ := setupEngine(t, &fakeRemote{down: true})
	ctx := context.Background()

	require.NoError(t, e.writeUsers(ctx, []models.User{{ID: "u1", Username: "alice", Role: models.RoleUser}}))

	u, err := e.Login(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestSignup_CreatesUserAndSignsIn(t *testing.T) {
	remote := &fakeRemote{}
	e, _ := setupEngine(t, remote)
	ctx := context.Background()

	u, err := e.Signup(ctx, "dave")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "dave", u.Username)
	assert.Equal(t, models.RoleUser, u.Role)

	current, err := e.GetCurrentAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, u.ID, current.ID)

	require.Len(t, remote.users, 1)
}

func TestSignup_DuplicateUsernameDifferingOnlyInCase_Fails(t *testing.T) {
	remote := &fakeRemote{users: []models.User{{ID: "u1", Username: "Alice"}}}
	e, _ := setupEngine(t, remote)

	_, err := e.Signup(context.Background(), "aLiCe")
	require.ErrorIs(t, err, common.ErrUsernameTaken)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestSignup_Offline_ChecksLocalListAndSavesLocally(t *testing.T) {
	remote := &fakeRemote{down: true}
	e, _ := setupEngine(t, remote)
	ctx := context.Background()

	require.NoError(t, e.writeUsers(ctx, []models.User{{ID: "u1", Username: "alice"}}))

	_, err := e.Signup(ctx, "alice")
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	u, err := e.Signup(ctx, "bob")
	require.NoError(t, err)

	// saved locally, remote never received it
	users, err := e.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Empty(t, remote.users)
	_ = u
}

func TestSignup_EmptyUsername_ValidationError(t *testing.T) {
	e, _ := setupEngine(t, &fakeRemote{})

	_, err := e.Signup(context.Background(), "  ")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestLogout_ClearsSession(t *testing.T) {
	e, _ := setupEngine(t, &fakeRemote{})
	ctx := context.Background()

	_, err := e.Signup(ctx, "erin")
	require.NoError(t, err)

	require.NoError(t, e.Logout(ctx))

	current, err := e.GetCurrentAuth(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
