package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"adminpanel/models"
	"adminpanel/services"
)

func TestPrintCardsShowsErrors(t *testing.T) {
	var buf bytes.Buffer
	printCards(&buf, []models.StatCard{
		{Title: "Usuarios", Value: 3, Total: 4, Percentage: 75, Description: "3 de 4 activos"},
		{Title: "Sedes", Description: "Sin datos", Error: "No se pudo conectar con el servidor"},
	})

	out := buf.String()
	assert.Contains(t, out, "Usuarios")
	assert.Contains(t, out, "75.0")
	assert.Contains(t, out, "Sin datos (No se pudo conectar con el servidor)")
}

func TestPrintTree(t *testing.T) {
	view := services.EditorView{
		Role:         models.Role{ID: 5, Name: "Supervisor"},
		ModuleCount:  2,
		GrantedCount: 1,
		Parents: []services.ParentView{{
			ModulePermission: services.ModulePermission{
				Module:     models.Module{ID: 1, Name: "Usuarios"},
				Permission: models.FullPermission(true),
			},
			Status: services.SubtreeStatus{FullyConfigured: true},
			Children: []services.ModulePermission{
				{Module: models.Module{ID: 11, Name: "Crear"}, Permission: models.Permission{Read: true}},
			},
		}},
	}

	var buf bytes.Buffer
	printTree(&buf, view)
	out := buf.String()
	assert.Contains(t, out, "Rol #5 Supervisor (1/2")
	assert.Contains(t, out, "completo")
	assert.Contains(t, out, "└ Crear")
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "x\t-\tx\t-", flags(models.Permission{Create: true, Update: true}))
}
