package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshathikala/stress-detect/helpers"
)

func newAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := c.MustGet("claims").(*helpers.Claims)
		c.String(http.StatusOK, claims.Username)
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	helpers.SetJWTKey("test-secret")
	token, err := helpers.GenerateToken("u1", "alice", "USER")
	require.NoError(t, err)

	tests := []struct {
		name       string
		auth       string
		expectCode int
		expectBody string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, "Unauthorized"},
		{"not a bearer token", "Basic abc123", http.StatusUnauthorized, "Unauthorized"},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, "Unauthorized"},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.auth)
			assert.Equal(t, tt.expectCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectBody)
		})
	}
}

func TestAuthenticateRejectsWrongKey(t *testing.T) {
	helpers.SetJWTKey("other-secret")
	token, err := helpers.GenerateToken("u1", "alice", "USER")
	require.NoError(t, err)

	helpers.SetJWTKey("test-secret")
	w := get(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorize(t *testing.T) {
	helpers.SetJWTKey("test-secret")
	adminToken, err := helpers.GenerateToken("a1", "root", "ADMIN")
	require.NoError(t, err)
	userToken, err := helpers.GenerateToken("u1", "alice", "USER")
	require.NoError(t, err)

	r := newAuthRouter(Authorize("ADMIN"))

	w := get(r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", w.Body.String())

	w = get(r, "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}
