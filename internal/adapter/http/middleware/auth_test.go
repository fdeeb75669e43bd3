package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-123"

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func guardedRouter(secret string, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireRoles(secret, roles...))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})
	return r
}

func serve(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoles_ValidToken(t *testing.T) {
	r := guardedRouter(testSecret, RoleAdmin, RoleStaff)

	w := serve(r, "Bearer "+signToken(t, testSecret, RoleStaff, time.Hour))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
	assert.Contains(t, w.Body.String(), RoleStaff)
}

func TestRequireRoles_Rejections(t *testing.T) {
	r := guardedRouter(testSecret, RoleAdmin)

	cases := []struct {
		name   string
		header string
		code   int
		errTag string
	}{
		{name: "no header", header: "", code: http.StatusUnauthorized, errTag: "AUTH_HEADER_MISSING"},
		{name: "basic auth", header: "Basic dGVzdA==", code: http.StatusUnauthorized, errTag: "INVALID_AUTH_FORMAT"},
		{name: "garbage token", header: "Bearer not-a-jwt", code: http.StatusUnauthorized, errTag: "INVALID_TOKEN"},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", RoleAdmin, time.Hour), code: http.StatusUnauthorized, errTag: "INVALID_TOKEN"},
		{name: "expired", header: "Bearer " + signToken(t, testSecret, RoleAdmin, -time.Minute), code: http.StatusUnauthorized, errTag: "INVALID_TOKEN"},
		{name: "wrong role", header: "Bearer " + signToken(t, testSecret, RoleStaff, time.Hour), code: http.StatusForbidden, errTag: "FORBIDDEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, tc.header)
			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.errTag)
		})
	}
}

func TestRequireRoles_DisabledWithoutSecret(t *testing.T) {
	r := guardedRouter("", RoleAdmin)

	w := serve(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
