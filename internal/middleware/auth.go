package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"designfoli-web/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	UserIDKey = "user_id"
	// TokenKey holds the raw bearer token so handlers can forward it to the
	// DesignFoli API.
	TokenKey = "access_token"
)

// AuthMiddleware requires a Supabase access token. With a JWT secret the
// signature is checked here; without one (development only, see
// config.Validate) the token is only decoded and the DesignFoli API remains
// the authority. Either way only HS256 tokens are accepted.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, msg := bearerToken(c.GetHeader("Authorization"))
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}

		claims, err := parseClaims(tokenString, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token", "message": tokenErrorMessage(err)})
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id in token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, sub)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "missing authorization header"
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", "invalid authorization header format"
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", "empty token"
	}
	// Some clients URL-encode the token
	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}
	return token, ""
}

func parseClaims(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if secret == "" {
		token, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
		if err != nil {
			return nil, err
		}
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%w: signing method %v is not allowed", jwt.ErrTokenUnverifiable, token.Header["alg"])
		}
		exp, err := claims.GetExpirationTime()
		if err != nil {
			return nil, err
		}
		if exp != nil && exp.Before(time.Now()) {
			return nil, jwt.ErrTokenExpired
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func tokenErrorMessage(err error) string {
	switch {
	case strings.Contains(err.Error(), "signature is invalid"):
		return "token signature is invalid - check JWT secret"
	case strings.Contains(err.Error(), "token is expired"):
		return "token has expired"
	case strings.Contains(err.Error(), "malformed"), strings.Contains(err.Error(), "could not JSON decode"):
		return "token is malformed - sign in again to get a fresh token"
	}
	return err.Error()
}

// UserID returns the authenticated user set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// Token returns the bearer token set by AuthMiddleware.
func Token(c *gin.Context) string {
	return c.GetString(TokenKey)
}
