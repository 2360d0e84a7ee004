package policy

import (
	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
)

// IncludeUnpublished reports whether the caller's visible set of posts
// includes unpublished ones. Only staff see drafts; an author gets no
// carve-out for their own unpublished posts.
func IncludeUnpublished(c auth.Caller) bool {
	return c.IsStaff
}

// PostVisible reports whether a single post is inside the caller's
// visible set. Controllers apply this before any per-object permission
// check so a hidden post reads as not found rather than forbidden.
func PostVisible(c auth.Caller, p *models.Post) bool {
	if p == nil {
		return false
	}
	return c.IsStaff || p.IsPublished
}
