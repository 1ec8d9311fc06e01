package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// AdminHandler handles HTTP requests for admin operations
type AdminHandler struct {
	service AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListAdmins handles GET /admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	admins, err := h.service.ListAdmins(ctx)
	if err != nil {
		respondError(ctx, c, logger, "Failed to list admins", err)
		return
	}
	c.JSON(http.StatusOK, toAdminResponses(admins))
}

// GetAdmin handles GET /admins/:id
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid admin id", err)
		return
	}

	admin, err := h.service.GetAdmin(ctx, id)
	if err != nil {
		respondError(ctx, c, logger, "Failed to get admin", err)
		return
	}
	c.JSON(http.StatusOK, toAdminResponse(admin))
}

// CreateAdmin handles POST /admins
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	p.require(adminRequired...)
	p.require("password")
	in := decodeAdmin(p)
	if err := p.err(); err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}

	admin, err := h.service.CreateAdmin(ctx, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to create admin", err)
		return
	}

	logger.Info("Admin created", zap.Int64("admin_id", admin.ID), zap.String("role", string(admin.Role)))
	c.JSON(http.StatusCreated, toAdminResponse(admin))
}

// ReplaceAdmin handles PUT /admins/:id
func (h *AdminHandler) ReplaceAdmin(c *gin.Context) {
	h.updateAdmin(c, true)
}

// PatchAdmin handles PATCH /admins/:id
func (h *AdminHandler) PatchAdmin(c *gin.Context) {
	h.updateAdmin(c, false)
}

func (h *AdminHandler) updateAdmin(c *gin.Context, full bool) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid admin id", err)
		return
	}

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	if full {
		p.require(adminRequired...)
	}
	in := decodeAdmin(p)
	if err := p.err(); err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}

	admin, err := h.service.UpdateAdmin(ctx, id, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to update admin", err)
		return
	}

	logger.Info("Admin updated", zap.Int64("admin_id", id))
	c.JSON(http.StatusOK, toAdminResponse(admin))
}

// DeleteAdmin handles DELETE /admins/:id; the admin's hostels go with it.
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid admin id", err)
		return
	}

	removed, err := h.service.DeleteAdmin(ctx, id)
	if err != nil {
		respondError(ctx, c, logger, "Failed to delete admin", err)
		return
	}

	span.SetAttributes(attribute.Int64("hostels.cascaded", removed))
	logger.Info("Admin deleted", zap.Int64("admin_id", id), zap.Int64("hostels_removed", removed))
	c.Status(http.StatusNoContent)
}

// ListAdminHostels handles GET /admins/:id/hostels
func (h *AdminHandler) ListAdminHostels(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid admin id", err)
		return
	}

	hostels, err := h.service.ListAdminHostels(ctx, id)
	if err != nil {
		respondError(ctx, c, logger, "Failed to list admin hostels", err)
		return
	}
	c.JSON(http.StatusOK, toHostelResponses(hostels))
}
