// Package policy holds the pure access-control rules for posts and
// comments. Decisions are deterministic functions of the caller's role
// and a snapshot of the resource; nothing here touches storage.
package policy

import (
	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
)

// Action identifies a controller operation for permission checks
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionDelete
)

// String returns the action name for logging
func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionRetrieve:
		return "retrieve"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// IsRead reports whether the action only reads the resource
func (a Action) IsRead() bool {
	return a == ActionList || a == ActionRetrieve
}

// CanAccess reports whether the caller may perform the action on the
// given resource. Which posts are discoverable at all is decided by
// the visibility filter, not here.
func CanAccess(c auth.Caller, resource interface{}, action Action) bool {
	switch res := resource.(type) {
	case *models.Post:
		return canAccessPost(c, action)
	case *models.Comment:
		return canAccessComment(c, res, action)
	default:
		return false
	}
}

// CanAccessPost implements the staff-or-read-only rule for posts:
// anyone may read, any authenticated caller may create, and only
// staff may update or delete (authors included).
func CanAccessPost(c auth.Caller, action Action) bool {
	return canAccessPost(c, action)
}

func canAccessPost(c auth.Caller, action Action) bool {
	if action.IsRead() {
		return true
	}
	switch c.Role() {
	case auth.RoleStaff:
		return true
	case auth.RoleAuthenticated:
		return action == ActionCreate
	default:
		return false
	}
}

// CanAccessComment implements the author-or-staff rule for comments.
// Creation only needs authentication; everything else needs staff or
// ownership, compared by author id.
func CanAccessComment(c auth.Caller, comment *models.Comment, action Action) bool {
	return canAccessComment(c, comment, action)
}

func canAccessComment(c auth.Caller, comment *models.Comment, action Action) bool {
	if action == ActionCreate {
		return c.IsAuthenticated
	}
	switch c.Role() {
	case auth.RoleStaff:
		return true
	case auth.RoleAuthenticated:
		return comment != nil && comment.AuthorID == c.ID
	default:
		return false
	}
}
