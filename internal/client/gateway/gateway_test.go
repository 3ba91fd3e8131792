package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfulhq/mindful/internal/models"
)

func TestUsers_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"admin-root-id","username":"admin","role":"admin","createdAt":1}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestReminders_ScopesByUserAndCoercesCompleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reminders", r.URL.Path)
		require.Equal(t, "u1", r.URL.Query().Get("userId"))
		// numeric and boolean forms must both decode
		_, _ = w.Write([]byte(`[
			{"id":"t1","userId":"u1","title":"a","completed":1,"createdAt":2},
			{"id":"t2","userId":"u1","title":"b","completed":false,"createdAt":1}
		]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	reminders, err := c.Reminders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.True(t, bool(reminders[0].Completed))
	assert.False(t, bool(reminders[1].Completed))
}

func TestCreateReminder_SendsCompletedAsInt(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	err := c.CreateReminder(context.Background(), models.Reminder{ID: "t1", UserID: "u1", Title: "a", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, float64(1), got["completed"])
}

func TestDo_Non2xx_ReturnsRemoteUnavailableWithErrorText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Root admin locked"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	err := c.DeleteUser(context.Background(), "admin-root-id")
	require.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "Root admin locked")
}

func TestDo_NetworkError_ReturnsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Users(context.Background())
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestDo_InvalidResponseBody_ReturnsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.AllReminders(context.Background())
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}
