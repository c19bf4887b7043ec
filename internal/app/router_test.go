package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"intrahub.io/portal/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newSkipPublicRouter() *gin.Engine {
	router := gin.New()
	router.Use(jwtSkipPublic([]byte("test-signing-key-0123456789abcdef")))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.POST("/api/v1/auth/login", ok)
	router.POST("/api/v1/auth/register", ok)
	router.GET("/api/v1/health/live", ok)
	router.GET("/api/v1/health/ready", ok)
	router.GET("/api/v1/notifications", ok)
	router.POST("/api/v1/notifications/send", ok)
	router.GET("/api/v1/auth/me", ok)
	return router
}

func TestJWTSkipPublic_PublicRoutesBypassAuth(t *testing.T) {
	router := newSkipPublicRouter()

	public := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodGet, "/api/v1/health/live"},
		{http.MethodGet, "/api/v1/health/ready"},
	}
	for _, tt := range public {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s %s without token: status = %d, want %d", tt.method, tt.path, w.Code, http.StatusOK)
		}
	}
}

func TestJWTSkipPublic_ProtectedRoutesRequireToken(t *testing.T) {
	router := newSkipPublicRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodPost, "/api/v1/notifications/send"},
		{http.MethodGet, "/api/v1/auth/me"},
	}
	for _, tt := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want %d", tt.method, tt.path, w.Code, http.StatusUnauthorized)
		}
	}
}
