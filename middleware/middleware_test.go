package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/utils"
)

func TestLoggingAssignsRequestID(t *testing.T) {
	var seen string
	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "upstream-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "upstream-1", seen)
}

func TestEditorSession(t *testing.T) {
	utils.SetEditorSecret("mw-secret")
	t.Cleanup(func() { utils.SetEditorSecret("") })

	var sessionID string
	var roleID int64
	h := EditorSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID = EditorSessionID(r.Context())
		roleID = EditorRoleID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/editor", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/console/editor", nil)
	req.Header.Set(EditorTokenHeader, "not-a-token")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := utils.GenerateEditorToken("sess-9", 4, time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/console/editor", nil)
	req.Header.Set(EditorTokenHeader, token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-9", sessionID)
	assert.Equal(t, int64(4), roleID)
}

func TestForwardAuthorizationAndActor(t *testing.T) {
	var actor string
	h := ForwardAuthorization(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = Actor(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "anonymous", actor)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ActorHeader, " ana ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "ana", actor)
}
