package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/token"
)

// Gin context keys set by AuthMiddleware
const (
	ContextUserID = "user_id"
	ContextClaims = "token_claims"
)

const bearerPrefix = "Bearer "

// TokenAuthenticator resolves a raw bearer token into the caller's claims
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, raw string) (*token.Claims, error)
}

// AuthMiddleware requires a valid, unrevoked bearer token. It runs before any
// record lookup, so an unauthenticated caller learns nothing about which ids
// exist. On success it sets ContextUserID (int64) and ContextClaims.
func AuthMiddleware(auth TokenAuthenticator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			recordAuthFailure("missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			recordAuthFailure("malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), authHeader[len(bearerPrefix):])
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				recordAuthFailure("rejected")
				if logger != nil {
					logger.Debug("Auth validation failed", zap.Error(err))
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			recordAuthFailure("unavailable")
			if logger != nil {
				logger.Error("Auth backend unavailable", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication temporarily unavailable"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by AuthMiddleware
func CallerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CallerClaims returns the token claims set by AuthMiddleware
func CallerClaims(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
