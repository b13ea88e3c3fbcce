package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteLifecycle(t *testing.T) {
	app := setupApp(t)

	_, err := app.biodatas.Upsert(context.Background(), "owner@x.com", upsertFixture("Owner", "Male"))
	require.NoError(t, err)
	cookie := app.sessionCookie(t, "viewer@x.com", "member")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", bytes.NewReader([]byte(`{"biodata_id":1}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.AddCookie(cookie)
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "viewer@x.com")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/favorites?biodata_id=1", nil)
	req.AddCookie(cookie)
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":1`)
}

func TestFavoriteUnknownProfile(t *testing.T) {
	app := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", bytes.NewReader([]byte(`{"biodata_id":99}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(app.sessionCookie(t, "viewer@x.com", "member"))
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveMissingFavoriteReportsZero(t *testing.T) {
	app := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/favorites?biodata_id=7", nil)
	req.AddCookie(app.sessionCookie(t, "viewer@x.com", "member"))
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":0`)
}
