package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

func newRedisStore(t *testing.T) (*RedisEditorStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisEditorStore(rdb), mr
}

func redisSession(t *testing.T, store *RedisEditorStore, id string) {
	t.Helper()
	state := &EditorState{SessionID: id}
	state.load(models.Role{ID: 5, Name: "Supervisor"}, tenModules(), nil, time.Now())
	require.NoError(t, store.Put(context.Background(), state, time.Minute))
}

func TestRedisStoreGetPutDelete(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	redisSession(t, store, "s1")
	assert.True(t, mr.Exists(editorKey("s1")))
	assert.Equal(t, time.Minute, mr.TTL(editorKey("s1")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", got.Role.Name)
	assert.Equal(t, 10, got.Permissions.Len())

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	redisSession(t, store, "s1")

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreUpdate(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "missing", time.Minute, func(*EditorState) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)

	redisSession(t, store, "s1")
	updated, err := store.Update(ctx, "s1", time.Hour, func(st *EditorState) error {
		st.SetAll(12, true)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Permission(12).Full())
	assert.Equal(t, time.Hour, mr.TTL(editorKey("s1")))

	boom := errors.New("rejected")
	_, err = store.Update(ctx, "s1", time.Hour, func(st *EditorState) error {
		st.SetAll(13, true)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, stored.Permission(12).Full())
	assert.False(t, stored.Permission(13).Any())
	assert.Equal(t, int64(1), stored.Revision)
}

func TestRedisStoreUpdateRetriesOnConflict(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	redisSession(t, store, "s1")

	otherClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { otherClient.Close() })
	other := NewRedisEditorStore(otherClient)

	calls := 0
	updated, err := store.Update(ctx, "s1", time.Minute, func(st *EditorState) error {
		calls++
		if calls == 1 {
			// another instance writes between WATCH and EXEC
			_, err := other.Update(ctx, "s1", time.Minute, func(o *EditorState) error {
				o.SetAll(13, true)
				return nil
			})
			require.NoError(t, err)
		}
		st.SetAll(12, true)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, updated.Permission(12).Full())
	assert.True(t, updated.Permission(13).Full())
}

func TestSharedRedisSessionKeepsConcurrentEdits(t *testing.T) {
	store, mr := newRedisStore(t)
	redisSession(t, store, "s1")

	f := newEditorFixture()
	first := NewRoleEditorService(f.roles, f.modules, f.permissions, store, nil, time.Minute)
	secondClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { secondClient.Close() })
	secondStore := NewRedisEditorStore(secondClient)
	second := NewRoleEditorService(f.roles, f.modules, f.permissions, secondStore, nil, time.Minute)

	ctx := context.Background()
	var wg sync.WaitGroup
	for _, tc := range []struct {
		svc    *RoleEditorService
		module int64
	}{{first, 12}, {second, 13}, {first, 22}, {second, 23}} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tc.svc.Apply(ctx, "s1", func(st *EditorState) error {
				st.SetAll(tc.module, true)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	for _, id := range []int64{12, 13, 22, 23} {
		assert.True(t, final.Permission(id).Full(), "module %d", id)
	}
	assert.Equal(t, int64(4), final.Revision)
}
