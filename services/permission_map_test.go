package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

func TestNewPermissionMapIgnoresUnknownModules(t *testing.T) {
	m := NewPermissionMap([]models.Module{{ID: 1}, {ID: 2}}, []models.PermissionRecord{
		{ModuleID: 2, Permission: models.Permission{Read: true}},
		{ModuleID: 50, Permission: models.FullPermission(true)},
	})

	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Get(2).Read)
	assert.False(t, m.Has(50))
	assert.Equal(t, 1, m.GrantedCount())
}

func TestPermissionMapWithDoesNotAlias(t *testing.T) {
	base := NewPermissionMap([]models.Module{{ID: 1}, {ID: 2}}, nil)
	next := base.With(1, models.FullPermission(true))
	again := next.WithMany(map[int64]models.Permission{2: {Delete: true}})

	assert.False(t, base.Get(1).Any())
	assert.True(t, next.Get(1).Full())
	assert.False(t, next.Get(2).Delete)
	assert.True(t, again.Get(2).Delete)
	assert.True(t, again.Get(1).Full())
}

func TestPermissionMapRecordsSorted(t *testing.T) {
	m := NewPermissionMap([]models.Module{{ID: 9}, {ID: 3}, {ID: 5}}, []models.PermissionRecord{
		{ModuleID: 5, Permission: models.Permission{Create: true}},
	})

	records := m.Records(7)
	require.Len(t, records, 3)
	assert.Equal(t, []int64{3, 5, 9}, []int64{records[0].ModuleID, records[1].ModuleID, records[2].ModuleID})
	assert.Equal(t, int64(7), records[1].RoleID)
	assert.True(t, records[1].Create)
}

func TestZeroPermissionMapReads(t *testing.T) {
	var m PermissionMap
	assert.Equal(t, models.Permission{}, m.Get(1))
	assert.Zero(t, m.Len())
	assert.True(t, m.With(1, models.FullPermission(true)).Get(1).Full())
}
