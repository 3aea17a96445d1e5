package proxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/models"
)

func TestProxyKeepsPrefixByDefault(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios", r.URL.Path)
		assert.Equal(t, "activo=1", r.URL.RawQuery)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Forwarded-For"))
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	h, err := New(Options{Target: backend.URL, Prefix: "/api"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios?activo=1", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestProxyStripPrefix(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/roles/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	h, err := New(Options{Target: backend.URL + "/v1", Prefix: "/api/", StripPrefix: true})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/roles/3", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProxyBackendDownIsJSON502(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := backend.URL
	backend.Close()

	h, err := New(Options{Target: url, Prefix: "/api"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sedes", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
}

func TestProxyRejectsRelativeTarget(t *testing.T) {
	_, err := New(Options{Target: "localhost:3000"})
	assert.Error(t, err)
}
