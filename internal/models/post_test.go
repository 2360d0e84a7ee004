package models_test

import (
	"testing"

	"github.com/blog-posts-api/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My First Post", "my-first-post"},
		{"  Spaces  Around  ", "spaces-around"},
		{"Hello, World! 2026", "hello-world-2026"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := models.Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
