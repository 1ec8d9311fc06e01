package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// startRequest opens the handler span and fetches the request logger.
func startRequest(c *gin.Context) (context.Context, trace.Span, *zap.Logger) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.FullPath()),
	))
	return ctx, span, middleware.GetLoggerFromGinContext(c)
}

// pathID parses the :id parameter. Anything that is not a positive integer
// cannot name a record.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// respondError maps err onto a status code and body. Details of unexpected
// errors stay in the logs.
func respondError(ctx context.Context, c *gin.Context, logger *zap.Logger, msg string, err error) {
	var verr *domain.ValidationError
	var conflict *domain.ConstraintViolation

	switch {
	case errors.As(err, &verr):
		logger.Info(msg, zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &conflict):
		logger.Info(msg, zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Field + " already exists", "field": conflict.Field})
	case errors.Is(err, domain.ErrNotFound):
		logger.Info(msg, zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		logger.Info(msg, zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrUnauthorized):
		logger.Info(msg, zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
	default:
		middleware.RecordError(ctx, err)
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
