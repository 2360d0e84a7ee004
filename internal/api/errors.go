package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blog-posts-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service-layer outcomes to HTTP responses. Every
// error body carries a stable machine-readable kind alongside the
// human message; internal detail never leaks to the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  validationErr.Error(),
			"kind":   "validation_error",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
			"kind":  "not_found",
		})
	case errors.Is(err, service.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
			"kind":  "authentication_required",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid credentials",
			"kind":  "authentication_required",
		})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "permission denied",
			"kind":  "permission_denied",
		})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
			"kind":  "internal",
		})
	}
}

// respondMalformed handles unparseable request bodies
func respondMalformed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "malformed request body",
		"kind":  "validation_error",
	})
}

// parseID extracts the numeric id path parameter. A non-numeric id
// cannot name any resource, so it reads as not found.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
			"kind":  "not_found",
		})
		return 0, false
	}
	return id, true
}
