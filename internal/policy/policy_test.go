package policy_test

import (
	"testing"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/policy"
)

var (
	anonymous = auth.Anonymous()
	member    = auth.Caller{ID: 10, IsAuthenticated: true}
	staff     = auth.Caller{ID: 99, IsAuthenticated: true, IsStaff: true}
)

func TestCanAccessPost(t *testing.T) {
	tests := []struct {
		name   string
		caller auth.Caller
		action policy.Action
		want   bool
	}{
		{"anonymous list", anonymous, policy.ActionList, true},
		{"anonymous retrieve", anonymous, policy.ActionRetrieve, true},
		{"anonymous create", anonymous, policy.ActionCreate, false},
		{"anonymous update", anonymous, policy.ActionUpdate, false},
		{"anonymous delete", anonymous, policy.ActionDelete, false},
		{"member retrieve", member, policy.ActionRetrieve, true},
		{"member create", member, policy.ActionCreate, true},
		{"member update", member, policy.ActionUpdate, false},
		{"member delete", member, policy.ActionDelete, false},
		{"staff create", staff, policy.ActionCreate, true},
		{"staff update", staff, policy.ActionUpdate, true},
		{"staff delete", staff, policy.ActionDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.CanAccessPost(tt.caller, tt.action); got != tt.want {
				t.Errorf("CanAccessPost(%s, %s) = %v, want %v",
					tt.caller.Role(), tt.action, got, tt.want)
			}
		})
	}
}

// A post author without staff privileges may never mutate their own
// post under the staff-or-read-only rule.
func TestPostAuthorCannotMutateOwnPost(t *testing.T) {
	post := &models.Post{ID: 1, AuthorID: member.ID}

	if policy.CanAccess(member, post, policy.ActionUpdate) {
		t.Error("Non-staff author must not update their own post")
	}
	if policy.CanAccess(member, post, policy.ActionDelete) {
		t.Error("Non-staff author must not delete their own post")
	}
}

func TestCanAccessComment(t *testing.T) {
	owned := &models.Comment{ID: 5, PostID: 1, AuthorID: member.ID}
	foreign := &models.Comment{ID: 6, PostID: 1, AuthorID: 777}

	tests := []struct {
		name    string
		caller  auth.Caller
		comment *models.Comment
		action  policy.Action
		want    bool
	}{
		{"anonymous create", anonymous, nil, policy.ActionCreate, false},
		{"member create", member, nil, policy.ActionCreate, true},
		{"staff create", staff, nil, policy.ActionCreate, true},
		{"anonymous retrieve", anonymous, foreign, policy.ActionRetrieve, false},
		{"owner retrieve", member, owned, policy.ActionRetrieve, true},
		{"owner update", member, owned, policy.ActionUpdate, true},
		{"owner delete", member, owned, policy.ActionDelete, true},
		{"non-owner retrieve", member, foreign, policy.ActionRetrieve, false},
		{"non-owner update", member, foreign, policy.ActionUpdate, false},
		{"non-owner delete", member, foreign, policy.ActionDelete, false},
		{"staff update foreign", staff, foreign, policy.ActionUpdate, true},
		{"staff delete foreign", staff, foreign, policy.ActionDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.CanAccessComment(tt.caller, tt.comment, tt.action); got != tt.want {
				t.Errorf("CanAccessComment(%s, %s) = %v, want %v",
					tt.caller.Role(), tt.action, got, tt.want)
			}
		})
	}
}

// Ownership is compared by id equality, not by sharing a struct.
func TestCommentOwnershipComparesIDs(t *testing.T) {
	caller := auth.Caller{ID: 31, IsAuthenticated: true}
	comment := &models.Comment{ID: 1, AuthorID: 31}

	if !policy.CanAccessComment(caller, comment, policy.ActionUpdate) {
		t.Error("Caller with matching author id must be treated as owner")
	}
}

func TestCanAccessUnknownResource(t *testing.T) {
	if policy.CanAccess(staff, "not a resource", policy.ActionRetrieve) {
		t.Error("Unknown resource types must be denied")
	}
}

func TestPostVisibility(t *testing.T) {
	published := &models.Post{ID: 1, IsPublished: true}
	draft := &models.Post{ID: 2, AuthorID: member.ID, IsPublished: false}

	if !policy.PostVisible(anonymous, published) {
		t.Error("Published posts must be visible to anonymous callers")
	}
	if policy.PostVisible(member, draft) {
		t.Error("Drafts must be hidden from non-staff, the author included")
	}
	if !policy.PostVisible(staff, draft) {
		t.Error("Drafts must be visible to staff")
	}
	if policy.PostVisible(staff, nil) {
		t.Error("A missing post is never visible")
	}

	if policy.IncludeUnpublished(member) {
		t.Error("Non-staff visible set must exclude unpublished posts")
	}
	if !policy.IncludeUnpublished(staff) {
		t.Error("Staff visible set must include unpublished posts")
	}
}
