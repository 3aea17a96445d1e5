package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

type countingLister[T any] struct {
	calls atomic.Int32
	items []T
	err   error
}

func (c *countingLister[T]) GetAll(context.Context) ([]T, error) {
	c.calls.Add(1)
	return c.items, c.err
}

func areaPicker(src *countingLister[models.Area]) *Picker[models.Area] {
	return NewPicker(PickerConfig[models.Area]{
		Kind:     PickerAreas,
		Fetch:    src.GetAll,
		Option:   func(a models.Area) Option { return Option{ID: a.ID, Label: a.Name, Active: a.Active} },
		ScopeKey: "sedeId",
		ScopeOf:  func(a models.Area) int64 { return a.SiteID },
	})
}

func sampleAreas() []models.Area {
	return []models.Area{
		{ID: 1, Name: "Producción", SiteID: 10, Active: true},
		{ID: 2, Name: "Área Comercial", SiteID: 10, Active: true},
		{ID: 3, Name: "Almacén", SiteID: 20, Active: false},
	}
}

func TestPickerLoadsOnce(t *testing.T) {
	src := &countingLister[models.Area]{items: sampleAreas()}
	p := areaPicker(src)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Load(ctx))
		}()
	}
	wg.Wait()
	require.NoError(t, p.Load(ctx))
	assert.Equal(t, int32(1), src.calls.Load())

	require.NoError(t, p.Reload(ctx))
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestPickerOptionsFilterAndSort(t *testing.T) {
	p := areaPicker(&countingLister[models.Area]{items: sampleAreas()})
	require.NoError(t, p.Load(context.Background()))

	all := p.Options("", nil)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Almacén", "Área Comercial", "Producción"},
		[]string{all[0].Label, all[1].Label, all[2].Label})

	match := p.Options("aREa", nil)
	require.Len(t, match, 1)
	assert.Equal(t, int64(2), match[0].ID)

	assert.Len(t, p.Options("PRODUCCION", nil), 1)

	scoped := p.Options("", Scope{"sedeId": 20})
	require.Len(t, scoped, 1)
	assert.Equal(t, "Almacén", scoped[0].Label)

	// unrelated scope keys are ignored
	assert.Len(t, p.Options("", Scope{"cargoId": 99}), 3)
}

func TestPickerFailureKeepsMessage(t *testing.T) {
	src := &countingLister[models.Area]{err: errors.New("connection refused")}
	p := areaPicker(src)

	err := p.Load(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, p.Err())
	assert.False(t, p.Loaded())
	assert.Empty(t, p.Options("", nil))

	src.err = nil
	src.items = sampleAreas()
	require.NoError(t, p.Load(context.Background()))
	assert.Empty(t, p.Err())
	assert.Len(t, p.Options("", nil), 3)
}

func TestReloadFailureDropsCachedOptions(t *testing.T) {
	src := &countingLister[models.Area]{items: sampleAreas()}
	p := areaPicker(src)
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.Len(t, p.Options("", nil), 3)

	src.err = errors.New("connection refused")
	require.Error(t, p.Reload(ctx))
	assert.NotEmpty(t, p.Err())
	assert.False(t, p.Loaded())
	assert.Empty(t, p.Options("", nil))
	assert.Empty(t, p.Items())

	// the next Load fetches again
	src.err = nil
	require.NoError(t, p.Load(ctx))
	assert.Len(t, p.Options("", nil), 3)
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestSelectionReportsUpward(t *testing.T) {
	p := areaPicker(&countingLister[models.Area]{items: sampleAreas()})
	ctx := context.Background()

	var reported []int64
	sel := p.Bind(func(id int64) { reported = append(reported, id) })

	require.NoError(t, sel.Select(ctx, 2))
	assert.Equal(t, int64(2), sel.Selected())

	assert.ErrorIs(t, sel.Select(ctx, 99), ErrUnknownOption)
	assert.Equal(t, int64(2), sel.Selected())

	sel.Clear()
	assert.Zero(t, sel.Selected())
	assert.Equal(t, []int64{2, 0}, reported)
}

func TestRegistryKinds(t *testing.T) {
	reg := NewPickerRegistry(emptyPickerSources())
	assert.Len(t, reg.Kinds(), 11)

	for _, kind := range []string{"areas", "sedes", "cargos", "roles", "modulos", "choperas",
		"clientes", "empleados", "mercaderistas", "rutas", "tipos-mercaderista"} {
		p, ok := reg.Get(kind)
		require.True(t, ok, kind)
		assert.Equal(t, kind, p.Kind())
	}
	_, ok := reg.Get("productos")
	assert.False(t, ok)
}

func TestRegistryWarmReportsFailures(t *testing.T) {
	src := emptyPickerSources()
	src.Routes = staticLister[models.Route]{err: errors.New("timeout")}
	reg := NewPickerRegistry(src)

	failed := reg.Warm(context.Background())
	require.Len(t, failed, 1)
	assert.Contains(t, failed, PickerRoutes)
	assert.True(t, reg.Sites.Loaded())
}

func TestRoutesScopedByMerchandiser(t *testing.T) {
	src := emptyPickerSources()
	src.Routes = staticLister[models.Route]{items: []models.Route{
		{ID: 1, Name: "Ruta Norte", Zone: "Comas", MerchandiserID: 5},
		{ID: 2, Name: "Ruta Sur", Zone: "Chorrillos", MerchandiserID: 6},
	}}
	reg := NewPickerRegistry(src)
	require.NoError(t, reg.Routes.Load(context.Background()))

	opts := reg.Routes.Options("", Scope{"mercaderistaId": 6})
	require.Len(t, opts, 1)
	assert.Equal(t, "Chorrillos", opts[0].Detail)

	// detail is searchable too
	assert.Len(t, reg.Routes.Options("comas", nil), 1)
}

func emptyPickerSources() PickerSources {
	return PickerSources{
		Areas:             staticLister[models.Area]{},
		Sites:             staticLister[models.Site]{},
		Positions:         staticLister[models.Position]{},
		Roles:             staticLister[models.Role]{},
		Modules:           staticLister[models.Module]{},
		Dispensers:        staticLister[models.Dispenser]{},
		Customers:         staticLister[models.Customer]{},
		Employees:         staticLister[models.Employee]{},
		Merchandisers:     staticLister[models.Merchandiser]{},
		Routes:            staticLister[models.Route]{},
		MerchandiserTypes: staticLister[models.MerchandiserType]{},
	}
}
