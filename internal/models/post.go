package models

import (
	"regexp"
	"strings"
	"time"
)

// Post represents a blog post in the system
type Post struct {
	ID          int64     `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	Author      *Author   `json:"author,omitempty" db:"-"` // Joined from users
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Author holds the display fields of a post or comment author
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PostSummary is the list-view projection of a post (no body)
type PostSummary struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      *Author   `json:"author"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostDetail is the retrieve-view projection of a post with its comments
type PostDetail struct {
	Post
	Comments []*Comment `json:"comments"`
}

// Summary projects a post to its list representation
func (p *Post) Summary() *PostSummary {
	return &PostSummary{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Author:      p.Author,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
	}
}

// PostInput is the request body for creating a post
type PostInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Body        string `json:"body"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

// PostPatch is the request body for a full or partial post update
type PostPatch struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Body        *string `json:"body,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from a post title
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
