package api

import (
	"fmt"
	"net/http"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Success messages for the minimal write-response contract: post
// writes acknowledge with a message, never the resource body.
const (
	postCreatedMessage = "Post created successfully."
	postUpdatedMessage = "Post updated successfully."
)

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// List handles GET /posts
func (h *PostHandler) List(c *gin.Context) {
	caller := callerFromContext(c)

	posts, err := h.services.Post.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Retrieve handles GET /posts/:id
func (h *PostHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller := callerFromContext(c)

	post, err := h.services.Post.Retrieve(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondMalformed(c)
		return
	}
	caller := callerFromContext(c)

	post, err := h.services.Post.Create(c.Request.Context(), caller, &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":     fmt.Sprintf("/posts/%s-%d/", post.Slug, post.ID),
		"message": postCreatedMessage,
	})
}

// Update handles PUT and PATCH /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondMalformed(c)
		return
	}
	caller := callerFromContext(c)

	if err := h.services.Post.Update(c.Request.Context(), caller, id, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": postUpdatedMessage})
}

// Delete handles DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller := callerFromContext(c)

	if err := h.services.Post.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
