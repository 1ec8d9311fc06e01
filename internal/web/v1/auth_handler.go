package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the body returned by a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      int64  `json:"user_id"`
}

// AuthHandler handles login and logout
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		respondError(ctx, c, logger, "Invalid login request", bindError(&req, err))
		return
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(ctx, c, logger, "Login failed", err)
		return
	}

	logger.Info("User logged in", zap.Int64("user_id", result.UserID))
	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		UserID:      result.UserID,
	})
}

// Logout handles POST /auth/logout. The presented token is revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	claims, ok := middleware.CallerClaims(c)
	if !ok {
		respondError(ctx, c, logger, "Logout: no caller in context", domain.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(ctx, claims); err != nil {
		respondError(ctx, c, logger, "Logout failed", err)
		return
	}

	logger.Info("User logged out", zap.Int64("user_id", claims.UserID))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
