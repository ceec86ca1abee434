package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/config"
)

var errInvalidToken = errors.New("invalid token")

// SessionTokenHeader carries the refreshed token on every authenticated
// session response.
const SessionTokenHeader = "X-Session-Token"

// IssueSessionToken signs an HS256 token scoped to one trainer session.
func IssueSessionToken(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a token and returns the session it grants.
func ParseSessionToken(secret, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", errInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", errInvalidToken
	}
	return sessionID, nil
}

// SessionAuthMiddleware requires a token for the :id session, taken from the
// Authorization bearer header or, for websocket upgrades, the token query.
// A valid request gets a fresh token with a full ttl, so the token lives as
// long as the session keeps being used.
func SessionAuthMiddleware(cfg *config.Config, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		} else {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		sessionID, err := ParseSessionToken(cfg.JWTSecret, token)
		if err != nil || sessionID != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		fresh, err := IssueSessionToken(cfg.JWTSecret, sessionID, ttl)
		if err != nil {
			log.Printf("[AUTH] Failed to refresh token for session %s: %v", sessionID, err)
		} else {
			c.Header(SessionTokenHeader, fresh)
			c.Set("session_token", fresh)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
