package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/client"
	"adminpanel/models"
)

type fakeRoles struct {
	mu        sync.Mutex
	role      models.Role
	getErr    error
	updateErr error
	updates   []models.RoleRequest
	// block, when set, is waited on inside Update.
	block chan struct{}
	// entered is signalled when Update starts.
	entered chan struct{}
}

func (f *fakeRoles) Get(_ context.Context, id int64) (models.Role, error) {
	if f.getErr != nil {
		return models.Role{}, f.getErr
	}
	r := f.role
	r.ID = id
	return r, nil
}

func (f *fakeRoles) Update(ctx context.Context, id int64, req models.RoleRequest) (models.Role, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if err := ctx.Err(); err != nil {
		return models.Role{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	if f.updateErr != nil {
		return models.Role{}, f.updateErr
	}
	return models.Role{ID: id, Name: req.Name, Description: req.Description, Active: req.Active}, nil
}

type fakeModules struct {
	modules []models.Module
	err     error
}

func (f *fakeModules) GetAll(context.Context) ([]models.Module, error) {
	return f.modules, f.err
}

type fakePermissions struct {
	mu      sync.Mutex
	records []models.PermissionRecord
	err     error
	syncErr error
	synced  [][]models.PermissionRequest
}

func (f *fakePermissions) GetByRole(context.Context, int64) ([]models.PermissionRecord, error) {
	return f.records, f.err
}

func (f *fakePermissions) SyncRolePermissions(_ context.Context, _ int64, records []models.PermissionRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.synced = append(f.synced, records)
	return f.syncErr
}

func (f *fakePermissions) syncCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.synced)
}

type recordedActivity struct {
	actor, action, details string
}

type fakeActivity struct {
	mu      sync.Mutex
	entries []recordedActivity
}

func (f *fakeActivity) Record(_ context.Context, actor, action, details string) {
	f.mu.Lock()
	f.entries = append(f.entries, recordedActivity{actor, action, details})
	f.mu.Unlock()
}

func parentRef(id int64) *int64 { return &id }

// 2 parents with 4 children each = 10 modules.
func tenModules() []models.Module {
	return []models.Module{
		{ID: 1, Name: "Usuarios", Level: 1, Order: 1},
		{ID: 2, Name: "Mantenimiento", Level: 1, Order: 2},
		{ID: 11, Name: "Crear usuario", Level: 2, ParentID: parentRef(1), Order: 1},
		{ID: 12, Name: "Editar usuario", Level: 2, ParentID: parentRef(1), Order: 2},
		{ID: 13, Name: "Roles", Level: 2, ParentID: parentRef(1), Order: 3},
		{ID: 14, Name: "Sedes", Level: 2, ParentID: parentRef(1), Order: 4},
		{ID: 21, Name: "Choperas", Level: 2, ParentID: parentRef(2), Order: 1},
		{ID: 22, Name: "Programar", Level: 2, ParentID: parentRef(2), Order: 2},
		{ID: 23, Name: "Historial", Level: 2, ParentID: parentRef(2), Order: 3},
		{ID: 24, Name: "Reportes", Level: 2, ParentID: parentRef(2), Order: 4},
	}
}

type editorFixture struct {
	roles       *fakeRoles
	modules     *fakeModules
	permissions *fakePermissions
	activity    *fakeActivity
	svc         *RoleEditorService
}

func newEditorFixture() *editorFixture {
	f := &editorFixture{
		roles:   &fakeRoles{role: models.Role{Name: "Supervisor", Description: "Zona norte", Active: true}},
		modules: &fakeModules{modules: tenModules()},
		permissions: &fakePermissions{records: []models.PermissionRecord{
			{RoleID: 5, ModuleID: 1, Permission: models.FullPermission(true)},
			{RoleID: 5, ModuleID: 11, Permission: models.Permission{Read: true}},
			{RoleID: 5, ModuleID: 21, Permission: models.Permission{Read: true, Update: true}},
		}},
		activity: &fakeActivity{},
	}
	f.svc = NewRoleEditorService(f.roles, f.modules, f.permissions, NewMemoryEditorStore(), f.activity, time.Minute)
	return f
}

func TestOpenInitializesOneRecordPerModule(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 10, state.Permissions.Len())
	assert.Equal(t, 3, state.Permissions.GrantedCount())
	assert.False(t, state.Dirty)
	assert.Equal(t, "Supervisor", state.Role.Name)
	assert.NotEmpty(t, state.SessionID)

	defaults := 0
	for _, m := range tenModules() {
		if state.Permission(m.ID) == (models.Permission{}) {
			defaults++
		}
	}
	assert.Equal(t, 7, defaults)
}

func TestOpenFailsWhenAnyFetchFails(t *testing.T) {
	f := newEditorFixture()
	f.modules.err = errors.New("connection refused")

	_, err := f.svc.Open(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load modules")
}

func TestGetOnUnconfiguredModuleIsAllFalse(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, models.Permission{}, state.Permission(24))
	assert.Equal(t, models.Permission{}, state.Permission(999))
	assert.False(t, state.Permissions.Has(999))
}

func TestUpdateTouchesOnlyOneModule(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	before := state.Permissions
	require.NoError(t, state.Update(12, models.PermissionFieldDelete, true))

	assert.True(t, state.Permission(12).Delete)
	assert.False(t, before.Get(12).Delete, "previous snapshot must not change")
	for _, m := range tenModules() {
		if m.ID == 12 {
			continue
		}
		assert.Equal(t, before.Get(m.ID), state.Permission(m.ID))
	}
	assert.True(t, state.Dirty)
	assert.Equal(t, int64(1), state.Revision)
}

func TestUpdateRejectsUnknownField(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	err = state.Update(12, "borrar", true)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.False(t, state.Dirty)
}

func TestSetAllReplacesPartialState(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	state.SetAll(21, true)
	assert.True(t, state.Permission(21).Full())
	state.SetAll(21, false)
	assert.False(t, state.Permission(21).Any())
}

func TestSetAllForSubtree(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	state.SetAllForSubtree(2, true)
	status := state.Status(2)
	assert.True(t, status.FullyConfigured)
	assert.True(t, status.ParentFullyGranted)
	assert.True(t, status.AllChildrenFullyGranted)
	assert.Equal(t, 4, status.ChildCount)
	assert.Equal(t, 4, status.PartiallyConfiguredChildCount)

	state.SetAllForSubtree(2, false)
	assert.False(t, state.Permission(2).Any())
	for _, child := range state.Tree().ChildrenOf(2) {
		assert.False(t, state.Permission(child.ID).Any())
	}
	// other subtree untouched
	assert.True(t, state.Permission(1).Full())
	assert.Equal(t, int64(2), state.Revision)
}

func TestStatusCountsAnyGrantSeparatelyFromFull(t *testing.T) {
	f := newEditorFixture()
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	status := state.Status(1)
	assert.True(t, status.ParentFullyGranted)
	assert.False(t, status.AllChildrenFullyGranted)
	assert.False(t, status.FullyConfigured)
	assert.Equal(t, 4, status.ChildCount)
	assert.Equal(t, 1, status.PartiallyConfiguredChildCount)
}

func TestStatusWithoutChildren(t *testing.T) {
	f := newEditorFixture()
	f.modules.modules = []models.Module{{ID: 9, Level: 1}}
	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	state.SetAll(9, true)
	status := state.Status(9)
	assert.Equal(t, 0, status.ChildCount)
	assert.True(t, status.AllChildrenFullyGranted)
	assert.True(t, status.FullyConfigured)
}

func TestApplyPersistsOnlyOnSuccess(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetAll(24, true)
		return errors.New("abort")
	})
	require.Error(t, err)

	stored, err := f.svc.Get(ctx, state.SessionID)
	require.NoError(t, err)
	assert.False(t, stored.Permission(24).Any())
	assert.False(t, stored.Dirty)
}

func TestSaveSendsRoleThenFullPermissionSet(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetRoleFields("Supervisor general", "Todas las zonas", true)
		st.SetAllForSubtree(2, true)
		return nil
	})
	require.NoError(t, err)

	saved, err := f.svc.Save(ctx, state.SessionID, "ana")
	require.NoError(t, err)
	assert.False(t, saved.Dirty)
	assert.False(t, saved.Busy)
	assert.Empty(t, saved.LastError)

	require.Len(t, f.roles.updates, 1)
	assert.Equal(t, "Supervisor general", f.roles.updates[0].Name)
	require.Equal(t, 1, f.permissions.syncCount())
	synced := f.permissions.synced[0]
	assert.Len(t, synced, 10)
	for _, rec := range synced {
		assert.Equal(t, int64(5), rec.RoleID)
	}

	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, models.ActionSyncPermissions, f.activity.entries[0].action)
	assert.Equal(t, "ana", f.activity.entries[0].actor)
}

func TestSaveWithoutPermissionChangesSkipsSync(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)

	_, err = f.svc.Save(ctx, state.SessionID, "ana")
	require.NoError(t, err)
	assert.Len(t, f.roles.updates, 1)
	assert.Equal(t, 0, f.permissions.syncCount())
	assert.Equal(t, models.ActionSaveRole, f.activity.entries[0].action)
}

func TestSaveRoleFailureNeverSyncs(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	f.roles.updateErr = &client.APIError{StatusCode: 500, Message: "Error al actualizar el rol"}

	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		return st.Update(13, models.PermissionFieldCreate, true)
	})
	require.NoError(t, err)

	after, err := f.svc.Save(ctx, state.SessionID, "ana")
	require.Error(t, err)
	require.NotNil(t, after)

	assert.Equal(t, 0, f.permissions.syncCount())
	assert.True(t, after.Dirty)
	assert.False(t, after.Busy)
	assert.Equal(t, "Error al actualizar el rol", after.LastError)
	assert.True(t, after.Permission(13).Create, "unsaved edits stay")
	assert.Empty(t, f.activity.entries)
}

func TestSaveSyncFailureKeepsDirty(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	f.permissions.syncErr = errors.New("dial tcp: connection refused")

	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetAll(22, true)
		return nil
	})
	require.NoError(t, err)

	after, err := f.svc.Save(ctx, state.SessionID, "ana")
	require.Error(t, err)
	assert.True(t, after.Dirty)
	assert.Equal(t, "No se pudo conectar con el servidor", after.LastError)

	// retry after the backend recovers
	f.permissions.syncErr = nil
	after, err = f.svc.Save(ctx, state.SessionID, "ana")
	require.NoError(t, err)
	assert.False(t, after.Dirty)
	assert.Empty(t, after.LastError)
}

func TestSaveWithEmptyNameMakesNoCall(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetRoleFields("   ", "", true)
		return nil
	})
	require.NoError(t, err)

	_, err = f.svc.Save(ctx, state.SessionID, "ana")
	var verr ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "nombre")
	assert.Empty(t, f.roles.updates)

	stored, err := f.svc.Get(ctx, state.SessionID)
	require.NoError(t, err)
	assert.False(t, stored.Busy)
}

func TestSaveWhileBusyAndEditsDuringSave(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	f.roles.block = make(chan struct{})
	f.roles.entered = make(chan struct{}, 1)

	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetAll(23, true)
		return nil
	})
	require.NoError(t, err)

	type result struct {
		state *EditorState
		err   error
	}
	done := make(chan result, 1)
	go func() {
		st, err := f.svc.Save(ctx, state.SessionID, "ana")
		done <- result{st, err}
	}()
	<-f.roles.entered

	_, err = f.svc.Save(ctx, state.SessionID, "ana")
	assert.ErrorIs(t, err, ErrBusy)

	_, err = f.svc.Reload(ctx, state.SessionID)
	assert.ErrorIs(t, err, ErrBusy)

	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetAll(24, true)
		return nil
	})
	require.NoError(t, err)

	close(f.roles.block)
	res := <-done
	require.NoError(t, res.err)
	assert.True(t, res.state.Dirty, "edit made during the save is still unsaved")
	assert.True(t, res.state.Permission(24).Full())

	require.Equal(t, 1, f.permissions.syncCount())
	for _, rec := range f.permissions.synced[0] {
		if rec.ModuleID == 24 {
			assert.False(t, rec.Any(), "sync carries the snapshot taken at save time")
		}
	}
}

func TestReloadDiscardsLocalEdits(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, state.SessionID, func(st *EditorState) error {
		st.SetAllForSubtree(1, false)
		return nil
	})
	require.NoError(t, err)

	reloaded, err := f.svc.Reload(ctx, state.SessionID)
	require.NoError(t, err)
	assert.False(t, reloaded.Dirty)
	assert.True(t, reloaded.Permission(1).Full())
	assert.Equal(t, 3, reloaded.Permissions.GrantedCount())
}

func TestReloadFailureKeepsStateAndMessage(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)

	f.permissions.err = &client.APIError{StatusCode: 503, Message: "Servicio no disponible"}
	_, err = f.svc.Reload(ctx, state.SessionID)
	require.Error(t, err)

	stored, err := f.svc.Get(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Servicio no disponible", stored.LastError)
	assert.Equal(t, 10, stored.Permissions.Len())
}

func TestDiscardRemovesSession(t *testing.T) {
	f := newEditorFixture()
	ctx := context.Background()
	state, err := f.svc.Open(ctx, 5)
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, state.SessionID))
	_, err = f.svc.Get(ctx, state.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// contextStore fails like a network store once the caller's context is gone.
type contextStore struct {
	*MemoryEditorStore
}

func (c contextStore) Get(ctx context.Context, id string) (*EditorState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.MemoryEditorStore.Get(ctx, id)
}

func (c contextStore) Update(ctx context.Context, id string, ttl time.Duration, fn func(*EditorState) error) (*EditorState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.MemoryEditorStore.Update(ctx, id, ttl, fn)
}

func TestSaveClearsBusyWhenRequestIsCancelled(t *testing.T) {
	f := newEditorFixture()
	f.roles.block = make(chan struct{})
	f.roles.entered = make(chan struct{}, 1)
	f.svc = NewRoleEditorService(f.roles, f.modules, f.permissions, contextStore{NewMemoryEditorStore()}, f.activity, time.Minute)

	state, err := f.svc.Open(context.Background(), 5)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Save(ctx, state.SessionID, "ana")
		done <- err
	}()
	<-f.roles.entered
	cancel()
	close(f.roles.block)
	require.Error(t, <-done)

	stored, err := f.svc.Get(context.Background(), state.SessionID)
	require.NoError(t, err)
	assert.False(t, stored.Busy)
	assert.NotEmpty(t, stored.LastError)

	f.roles.block = nil
	f.roles.entered = nil
	_, err = f.svc.Save(context.Background(), state.SessionID, "ana")
	assert.NoError(t, err)
}
