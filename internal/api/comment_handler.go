package api

import (
	"net/http"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Create handles POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMalformed(c)
		return
	}
	caller := callerFromContext(c)

	comment, err := h.services.Comment.Create(c.Request.Context(), caller, &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Retrieve handles GET /comments/:id
func (h *CommentHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller := callerFromContext(c)

	comment, err := h.services.Comment.Retrieve(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Update handles PUT and PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.CommentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondMalformed(c)
		return
	}
	caller := callerFromContext(c)

	comment, err := h.services.Comment.Update(c.Request.Context(), caller, id, &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller := callerFromContext(c)

	if err := h.services.Comment.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
