package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(signingKey))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":      GetUserID(c.Request.Context()),
			"username":    GetUsername(c.Request.Context()),
			"role":        GetRole(c.Request.Context()),
			"sectorId":    GetSectorID(c.Request.Context()),
			"subsectorId": GetSubsectorID(c.Request.Context()),
		})
	})
	return router
}

func TestGenerateToken_ClaimsRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "intrahub-portal-test",
		ExpiresIn:  time.Hour,
	}

	tokenString, expiresAt, err := GenerateToken(cfg, "user-1", "maria.souza", "sector_admin", "sector-1", "subsector-2")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(*jwt.Token) (interface{}, error) {
		return cfg.SigningKey, nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*JWTClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maria.souza", claims.Username)
	assert.Equal(t, "sector_admin", claims.Role)
	assert.Equal(t, "sector-1", claims.SectorID)
	assert.Equal(t, "subsector-2", claims.SubsectorID)
	assert.Equal(t, "intrahub-portal-test", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTAuth_ValidTokenPopulatesContext(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "intrahub-portal-test",
		ExpiresIn:  time.Hour,
	}
	tokenString, _, err := GenerateToken(cfg, "user-1", "maria.souza", "user", "sector-1", "")
	require.NoError(t, err)

	router := newAuthTestRouter(cfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"userId":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
	assert.Contains(t, w.Body.String(), `"sectorId":"sector-1"`)
}

func TestJWTAuth_Rejections(t *testing.T) {
	t.Parallel()

	signingKey := []byte("test-signing-key-0123456789abcdef")

	expiredToken, _, err := GenerateToken(JWTConfig{
		SigningKey: signingKey,
		Issuer:     "intrahub-portal-test",
		ExpiresIn:  -time.Hour,
	}, "user-1", "maria.souza", "user", "", "")
	require.NoError(t, err)

	foreignToken, _, err := GenerateToken(JWTConfig{
		SigningKey: []byte("a-completely-different-signing-key"),
		Issuer:     "intrahub-portal-test",
		ExpiresIn:  time.Hour,
	}, "user-1", "maria.souza", "user", "", "")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "malformed token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong signing key", header: "Bearer " + foreignToken},
		{name: "none algorithm", header: "Bearer " + noneToken},
	}

	router := newAuthTestRouter(signingKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}
}
