package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FillsOnlyEmptyFields(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000).UTC()

	r := Reminder{UserID: "u1", Title: "walk"}
	r.Normalize(now)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, now.Format(time.RFC3339), r.DueDate)
	assert.Equal(t, PriorityMedium, r.Priority)
	assert.Equal(t, CategoryPersonal, r.Category)
	assert.Equal(t, now.UnixMilli(), r.CreatedAt)

	full := Reminder{
		ID: "t1", UserID: "u1", Title: "walk",
		DueDate: "2026-01-01T00:00:00Z", Priority: PriorityUrgent,
		Category: CategoryHealth, CreatedAt: 42,
	}
	full.Normalize(now)
	assert.Equal(t, "t1", full.ID)
	assert.Equal(t, "2026-01-01T00:00:00Z", full.DueDate)
	assert.Equal(t, PriorityUrgent, full.Priority)
	assert.Equal(t, CategoryHealth, full.Category)
	assert.EqualValues(t, 42, full.CreatedAt)
}

func TestSortRemindersByCreatedAt_NewestFirstAndStable(t *testing.T) {
	rs := []Reminder{
		{ID: "a", CreatedAt: 1},
		{ID: "b", CreatedAt: 3},
		{ID: "c", CreatedAt: 2},
		{ID: "d", CreatedAt: 2},
	}
	SortRemindersByCreatedAt(rs)

	ids := []string{rs[0].ID, rs[1].ID, rs[2].ID, rs[3].ID}
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids)
}

func TestIntBool_WireFormat(t *testing.T) {
	data, err := json.Marshal(Reminder{ID: "t1", Completed: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"completed":1`)

	var r Reminder
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","completed":0}`), &r))
	assert.False(t, bool(r.Completed))

	// boolean form from older snapshots must still decode
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","completed":true}`), &r))
	assert.True(t, bool(r.Completed))

	var bad IntBool
	require.Error(t, json.Unmarshal([]byte(`"yes"`), &bad))
}
