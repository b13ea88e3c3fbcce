package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikahlink/backend/internal/middleware"
)

func TestCreateSessionSetsCookie(t *testing.T) {
	app := setupApp(t)

	body := []byte(`{"email":"user@example.com","name":"User"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)
}

func TestCreateSessionRejectsBadBody(t *testing.T) {
	app := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearSessionExpiresCookie(t *testing.T) {
	app := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestCreateAccountDuplicateConflict(t *testing.T) {
	app := setupApp(t)

	body := []byte(`{"email":"user@example.com","name":"User"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAccountsRequiresAdmin(t *testing.T) {
	app := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.AddCookie(app.sessionCookie(t, "member@x.com", "member"))
	app.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.AddCookie(app.sessionCookie(t, "admin@x.com", "admin"))
	app.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
