package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

func TestUserFormMessages(t *testing.T) {
	form := NewCreateUserForm(&fakeUsers{}, formPickers(), nil, nil)
	form.SetFields(UserFields{FirstName: "  ", LastName: "Ruiz", Email: "no-es-email", Username: "ñu", Password: "12345"})

	var verr ValidationErrors
	require.ErrorAs(t, form.Validate(), &verr)
	assert.Equal(t, ValidationErrors{
		"nombre":   "El nombre es obligatorio",
		"email":    "El email no es válido",
		"username": "El usuario debe tener al menos 3 caracteres",
		"password": "La contraseña debe tener al menos 6 caracteres",
		"rolId":    "Seleccione un rol",
	}, verr)

	edit := NewEditUserForm(&fakeUsers{}, formPickers(), nil, models.User{ID: 9, RoleID: 1}, nil)
	edit.SetFields(UserFields{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Username: "aruiz"})
	assert.NoError(t, edit.Validate())
}

func TestRoleNameMessage(t *testing.T) {
	form := NewRoleForm(&fakeRoleWriter{}, nil, nil)
	form.Name = "   "

	var verr ValidationErrors
	require.ErrorAs(t, form.Validate(), &verr)
	assert.Equal(t, "El nombre del rol es obligatorio", verr["nombre"])
}

func TestUploadMessages(t *testing.T) {
	form := NewUploadForm(&fakeUploader{}, nil, 2<<20, nil)

	var verr ValidationErrors
	require.ErrorAs(t, form.Validate("productos", UploadFile{}), &verr)
	assert.Equal(t, "Destino de carga no válido", verr["target"])
	assert.Equal(t, "Seleccione un archivo", verr["file"])

	require.ErrorAs(t, form.Validate("rutas", UploadFile{Name: "a.pdf", Reader: strings.NewReader("")}), &verr)
	assert.Equal(t, "Solo se permiten archivos .xlsx, .xls o .csv", verr["file"])

	require.ErrorAs(t, form.Validate("rutas", UploadFile{Name: "a.csv", Reader: strings.NewReader("")}), &verr)
	assert.Equal(t, "El archivo está vacío", verr["file"])

	require.ErrorAs(t, form.Validate("rutas", UploadFile{Name: "a.csv", Size: 3 << 20, Reader: strings.NewReader("x")}), &verr)
	assert.Equal(t, "El archivo supera el tamaño máximo de 2 MB", verr["file"])

	_, err := form.Submit(context.Background(), "ana", "rutas", UploadFile{Name: "a.csv", Size: 1, Reader: strings.NewReader("x")})
	assert.NoError(t, err)
}
