package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
	"adminpanel/utils"
)

type fakeMaintenance struct {
	record models.Maintenance
	err    error
}

func (f fakeMaintenance) Get(_ context.Context, id int64) (models.Maintenance, error) {
	r := f.record
	r.ID = id
	return r, f.err
}

func TestMaintenanceViewResolvesDispenser(t *testing.T) {
	require.NoError(t, utils.SetConsoleLocation("UTC"))
	t.Cleanup(func() { _ = utils.SetConsoleLocation("") })

	src := emptyPickerSources()
	src.Dispensers = staticLister[models.Dispenser]{items: []models.Dispenser{{ID: 4, Code: "CH-004", Name: "Bar Central"}}}
	reg := NewPickerRegistry(src)

	view := NewMaintenanceView(fakeMaintenance{record: models.Maintenance{
		DispenserID: 4, Date: "2024-03-05", Status: models.MaintenanceStatusInProgress,
	}}, reg.Dispensers)

	detail, err := view.Load(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), detail.ID)
	assert.Equal(t, "CH-004 - Bar Central", detail.DispenserName)
	assert.Equal(t, "05/03/2024", detail.DateLabel)
	assert.Equal(t, "En proceso", detail.StatusLabel)
}

func TestMaintenanceViewDispenserFailureIsNotFatal(t *testing.T) {
	src := emptyPickerSources()
	src.Dispensers = staticLister[models.Dispenser]{err: errors.New("timeout")}
	reg := NewPickerRegistry(src)

	view := NewMaintenanceView(fakeMaintenance{record: models.Maintenance{DispenserID: 4, Status: "otro"}}, reg.Dispensers)
	detail, err := view.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Chopera #4", detail.DispenserName)
	assert.Equal(t, "otro", detail.StatusLabel)
}

func TestMaintenanceViewLoadFailure(t *testing.T) {
	view := NewMaintenanceView(fakeMaintenance{err: errors.New("not found")}, nil)
	_, err := view.Load(context.Background(), 1)
	assert.Error(t, err)
}
