package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

type staticLister[T any] struct {
	items []T
	err   error
}

func (s staticLister[T]) GetAll(context.Context) ([]T, error) {
	return s.items, s.err
}

func TestCardsSurviveThreeFailures(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewStatsService(StatsSources{
		Users: staticLister[models.User]{err: down},
		Roles: staticLister[models.Role]{err: down},
		Sites: staticLister[models.Site]{items: []models.Site{
			{ID: 1, Active: true}, {ID: 2, Active: true}, {ID: 3, Active: false},
		}},
		Maintenance: staticLister[models.Maintenance]{err: down},
	})

	cards := svc.Cards(context.Background())
	require.Len(t, cards, 4)

	sites := cards[2]
	assert.Equal(t, models.StatCardSites, sites.Key)
	assert.Equal(t, 2, sites.Value)
	assert.Equal(t, 3, sites.Total)
	assert.Equal(t, 66.7, sites.Percentage)
	assert.Empty(t, sites.Error)
	assert.Equal(t, "2 de 3 activas", sites.Description)

	for _, i := range []int{0, 1, 3} {
		assert.Zero(t, cards[i].Value)
		assert.Zero(t, cards[i].Percentage)
		assert.NotEmpty(t, cards[i].Error)
	}
}

func TestMaintenanceCardCountsPending(t *testing.T) {
	svc := NewStatsService(StatsSources{
		Users: staticLister[models.User]{},
		Roles: staticLister[models.Role]{},
		Sites: staticLister[models.Site]{},
		Maintenance: staticLister[models.Maintenance]{items: []models.Maintenance{
			{Status: models.MaintenanceStatusPending},
			{Status: models.MaintenanceStatusInProgress},
			{Status: models.MaintenanceStatusDone},
			{Status: models.MaintenanceStatusDone},
		}},
	})

	cards := svc.Cards(context.Background())
	assert.Equal(t, 2, cards[3].Value)
	assert.Equal(t, 50.0, cards[3].Percentage)
	// empty lists are not errors
	assert.Zero(t, cards[0].Total)
	assert.Empty(t, cards[0].Error)
}

func TestPercentageRounding(t *testing.T) {
	assert.Equal(t, 0.0, percentage(0, 0))
	assert.Equal(t, 33.3, percentage(1, 3))
	assert.Equal(t, 100.0, percentage(7, 7))
}
