package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HostelHandler handles HTTP requests for hostel operations
type HostelHandler struct {
	service HostelService
}

// NewHostelHandler creates a new hostel handler
func NewHostelHandler(service HostelService) *HostelHandler {
	return &HostelHandler{service: service}
}

// ListHostels handles GET /hostels
func (h *HostelHandler) ListHostels(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	hostels, err := h.service.ListHostels(ctx)
	if err != nil {
		respondError(ctx, c, logger, "Failed to list hostels", err)
		return
	}
	c.JSON(http.StatusOK, toHostelResponses(hostels))
}

// GetHostel handles GET /hostels/:id
func (h *HostelHandler) GetHostel(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid hostel id", err)
		return
	}

	hostel, err := h.service.GetHostel(ctx, id)
	if err != nil {
		respondError(ctx, c, logger, "Failed to get hostel", err)
		return
	}
	c.JSON(http.StatusOK, toHostelResponse(hostel))
}

// CreateHostel handles POST /hostels
func (h *HostelHandler) CreateHostel(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	p.require(hostelRequired...)
	in := decodeHostel(p)
	if err := p.err(); err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}

	hostel, err := h.service.CreateHostel(ctx, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to create hostel", err)
		return
	}

	logger.Info("Hostel created", zap.Int64("hostel_id", hostel.ID), zap.Int64("owner", hostel.OwnerID))
	c.JSON(http.StatusCreated, toHostelResponse(hostel))
}

// ReplaceHostel handles PUT /hostels/:id
func (h *HostelHandler) ReplaceHostel(c *gin.Context) {
	h.updateHostel(c, true)
}

// PatchHostel handles PATCH /hostels/:id
func (h *HostelHandler) PatchHostel(c *gin.Context) {
	h.updateHostel(c, false)
}

func (h *HostelHandler) updateHostel(c *gin.Context, full bool) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid hostel id", err)
		return
	}

	p, err := decodePayload(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}
	if full {
		p.require(hostelRequired...)
	}
	in := decodeHostel(p)
	if err := p.err(); err != nil {
		respondError(ctx, c, logger, "Invalid request", err)
		return
	}

	hostel, err := h.service.UpdateHostel(ctx, id, in)
	if err != nil {
		respondError(ctx, c, logger, "Failed to update hostel", err)
		return
	}

	logger.Info("Hostel updated", zap.Int64("hostel_id", id))
	c.JSON(http.StatusOK, toHostelResponse(hostel))
}

// DeleteHostel handles DELETE /hostels/:id
func (h *HostelHandler) DeleteHostel(c *gin.Context) {
	ctx, span, logger := startRequest(c)
	defer span.End()

	id, err := pathID(c)
	if err != nil {
		respondError(ctx, c, logger, "Invalid hostel id", err)
		return
	}

	if err := h.service.DeleteHostel(ctx, id); err != nil {
		respondError(ctx, c, logger, "Failed to delete hostel", err)
		return
	}

	logger.Info("Hostel deleted", zap.Int64("hostel_id", id))
	c.Status(http.StatusNoContent)
}
