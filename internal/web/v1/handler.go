package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// UserHandler handles HTTP requests for user and self-profile operations
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		respondError(ctx, c, logger, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, toUserProfiles(users))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid user id", err)
		return
	}
	span.SetAttributes(attribute.Int64("user.id", id))

	user, err := h.service.GetUser(ctx, id)
	if err != nil {
		respondError(ctx, c, logger, "Failed to get user", err)
		return
	}

	logger.Info("User retrieved", zap.Int64("user_id", id))
	c.JSON(http.StatusOK, toUserProfile(user))
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	p.require(userRequired...)
	p.require("password")
	in := decodeUser(p, true)
	if err := p.err(); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	span.SetAttributes(attribute.Bool("request.valid", true))

	user, err := h.service.CreateUser(ctx, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to create user", err)
		return
	}

	logger.Info("User created", zap.Int64("user_id", user.ID))
	c.JSON(http.StatusCreated, toUserProfile(user))
}

// ReplaceUser handles PUT /users/:id
func (h *UserHandler) ReplaceUser(c *gin.Context) {
	h.updateUser(c, true)
}

// PatchUser handles PATCH /users/:id
func (h *UserHandler) PatchUser(c *gin.Context) {
	h.updateUser(c, false)
}

// updateUser applies a full (PUT) or partial (PATCH) user input. The password
// stays optional on update; when present it is rehashed.
func (h *UserHandler) updateUser(c *gin.Context, full bool) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid user id", err)
		return
	}

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	if full {
		p.require(userRequired...)
	}
	in := decodeUser(p, true)
	if err := p.err(); err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}

	user, err := h.service.UpdateUser(ctx, id, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to update user", err)
		return
	}

	logger.Info("User updated", zap.Int64("user_id", id), zap.Bool("password_changed", in.Password != nil))
	c.JSON(http.StatusOK, toUserProfile(user))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid user id", err)
		return
	}

	if err := h.service.DeleteUser(ctx, id); err != nil {
		respondError(ctx, c, logger, "Failed to delete user", err)
		return
	}

	logger.Info("User deleted", zap.Int64("user_id", id))
	c.Status(http.StatusNoContent)
}

// GetProfile handles GET /user-profile/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	// Extract user info from auth middleware context (required - no fallback)
	callerID, ok := middleware.CallerID(c)
	if !ok {
		respondError(ctx, c, logger, "GetProfile: no caller in context", domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid user id", err)
		return
	}

	user, err := h.service.GetProfile(ctx, callerID, id)
	if err != nil {
		respondError(ctx, c, logger, "Failed to get profile", err)
		return
	}

	logger.Info("Profile retrieved", zap.Int64("user_id", id))
	c.JSON(http.StatusOK, toUserProfile(user))
}

// ReplaceProfile handles PUT /user-profile/:id
func (h *UserHandler) ReplaceProfile(c *gin.Context) {
	h.updateProfile(c, true)
}

// PatchProfile handles PATCH /user-profile/:id
func (h *UserHandler) PatchProfile(c *gin.Context) {
	h.updateProfile(c, false)
}

func (h *UserHandler) updateProfile(c *gin.Context, full bool) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	callerID, ok := middleware.CallerID(c)
	if !ok {
		respondError(ctx, c, logger, "UpdateProfile: no caller in context", domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid user id", err)
		return
	}

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	if full {
		p.require(userRequired...)
	}
	in := decodeUser(p, false)
	if err := p.err(); err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}

	user, err := h.service.UpdateProfile(ctx, callerID, id, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to update profile", err)
		return
	}

	logger.Info("Profile updated", zap.Int64("user_id", id))
	c.JSON(http.StatusOK, toUserProfile(user))
}
