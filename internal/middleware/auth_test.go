package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikahlink/backend/internal/middleware"
	"github.com/nikahlink/backend/internal/service"
)

func setupGateRouter(t *testing.T) (*gin.Engine, *service.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := service.NewSessionService("test-secret")
	router := gin.New()
	router.GET("/private", middleware.AuthMiddleware(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(middleware.ContextEmailKey),
			"role":  c.GetString(middleware.ContextRoleKey),
		})
	})
	return router, sessions
}

func TestGateRejectsMissingToken(t *testing.T) {
	router, _ := setupGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_token")
}

func TestGateRejectsInvalidToken(t *testing.T) {
	router, _ := setupGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestGateAcceptsCookieToken(t *testing.T) {
	router, sessions := setupGateRouter(t)

	token, err := sessions.IssueToken("user@example.com", "member")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestGateAcceptsBearerToken(t *testing.T) {
	router, sessions := setupGateRouter(t)

	token, err := sessions.IssueToken("user@example.com", "member")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := service.NewSessionService("test-secret")

	router := gin.New()
	router.GET("/admin",
		middleware.AuthMiddleware(sessions),
		middleware.RequireRole("admin"),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	memberToken, err := sessions.IssueToken("member@example.com", "member")
	require.NoError(t, err)
	adminToken, err := sessions.IssueToken("admin@example.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
