package models

import (
	"time"
)

// Comment represents a comment on a post
type Comment struct {
	ID         int64     `json:"id" db:"id"`
	PostID     int64     `json:"post_id" db:"post_id"`
	AuthorID   int64     `json:"author_id" db:"author_id"`
	Author     *Author   `json:"author,omitempty" db:"-"` // Joined from users
	Body       string    `json:"body" db:"body"`
	IsApproved bool      `json:"is_approved" db:"is_approved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CommentInput is the request body for creating a comment
type CommentInput struct {
	PostID int64  `json:"post_id"`
	Body   string `json:"body"`
}

// CommentPatch is the request body for a full or partial comment update.
// IsApproved is honored for staff callers only; for everyone else the
// field is stripped before the update is applied.
type CommentPatch struct {
	Body       *string `json:"body,omitempty"`
	IsApproved *bool   `json:"is_approved,omitempty"`
}

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500
