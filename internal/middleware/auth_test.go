package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"designfoli-web/internal/config"
	"designfoli-web/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func newRouter(cfg *config.Config, check func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg))
	router.GET("/test", func(c *gin.Context) {
		if check != nil {
			check(c)
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func serve(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/test", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router := newRouter(&config.Config{JWTSecret: testSecret}, nil)

	w := serve(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	router := newRouter(&config.Config{JWTSecret: testSecret}, nil)

	w := serve(router, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization header format")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newRouter(&config.Config{JWTSecret: testSecret}, nil)

	w := serve(router, "Bearer invalid-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router := newRouter(&config.Config{JWTSecret: testSecret}, nil)
	token := sign(t, jwt.MapClaims{"sub": "user-123"}, "another-secret")

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "signature is invalid")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "user-123"}, testSecret)
	router := newRouter(&config.Config{JWTSecret: testSecret}, func(c *gin.Context) {
		assert.Equal(t, "user-123", middleware.UserID(c))
		assert.Equal(t, token, middleware.Token(c))
	})

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_UnverifiedWithoutSecret(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "user-9", "exp": time.Now().Add(time.Hour).Unix()}, "whatever")
	router := newRouter(&config.Config{}, func(c *gin.Context) {
		assert.Equal(t, "user-9", middleware.UserID(c))
	})

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_RejectsUnsignedAndForeignAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"sub": "victim-user", "exp": time.Now().Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	for _, cfg := range []*config.Config{{Environment: "production"}, {JWTSecret: testSecret}} {
		for _, token := range []string{unsigned, hs512} {
			router := newRouter(cfg, func(c *gin.Context) {
				t.Errorf("request reached the handler as %q", middleware.UserID(c))
			})

			w := serve(router, "Bearer "+token)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAuthMiddleware_ExpiredWithoutSecret(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "user-9", "exp": time.Now().Add(-time.Hour).Unix()}, "whatever")
	router := newRouter(&config.Config{}, nil)

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token has expired")
}

func TestAuthMiddleware_MissingSubject(t *testing.T) {
	token := sign(t, jwt.MapClaims{"role": "anon"}, testSecret)
	router := newRouter(&config.Config{JWTSecret: testSecret}, nil)

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing user id")
}
