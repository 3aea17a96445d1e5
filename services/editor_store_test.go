package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

func TestMemoryStoreReturnsIsolatedCopies(t *testing.T) {
	store := NewMemoryEditorStore()
	ctx := context.Background()

	state := &EditorState{SessionID: "s1"}
	state.load(models.Role{ID: 1, Name: "Admin"}, tenModules(), nil, time.Now())
	require.NoError(t, store.Put(ctx, state, time.Minute))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got.SetAll(1, true)
	got.Role.Name = "changed"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, again.Permission(1).Any())
	assert.Equal(t, "Admin", again.Role.Name)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryEditorStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &EditorState{SessionID: "a"}, time.Minute))
	require.NoError(t, store.Put(ctx, &EditorState{SessionID: "b"}, time.Hour))
	require.NoError(t, store.Put(ctx, &EditorState{SessionID: "c"}, 0))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get(ctx, "b")
	assert.NoError(t, err)

	assert.Equal(t, 1, store.Sweep(now.Add(2*time.Hour)))
	assert.Equal(t, 1, store.Len())
	_, err = store.Get(ctx, "c")
	assert.NoError(t, err)
}

// RedisEditorStore persists sessions through this JSON form.
func TestEditorStateSurvivesJSON(t *testing.T) {
	state := &EditorState{SessionID: "s1", Revision: 4, Dirty: true}
	state.load(models.Role{ID: 5, Name: "Supervisor"}, tenModules(), []models.PermissionRecord{
		{ModuleID: 11, Permission: models.Permission{Read: true}},
	}, time.Now())
	state.Dirty = true
	state.SetAllForSubtree(2, true)

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded EditorState
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, 10, decoded.Permissions.Len())
	assert.True(t, decoded.Permission(11).Read)
	assert.True(t, decoded.Status(2).FullyConfigured)
	assert.True(t, decoded.Dirty)
	assert.Equal(t, state.Revision, decoded.Revision)
	assert.Len(t, decoded.Tree().Parents, 2)
}
