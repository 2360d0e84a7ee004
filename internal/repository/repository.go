package repository

import (
	"context"

	"github.com/blog-posts-api/internal/database"
	"github.com/blog-posts-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// PostRepository defines the interface for post data operations.
// List and GetByID take the caller's visibility as a predicate:
// when includeUnpublished is false, unpublished rows do not exist
// as far as the result is concerned.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64, includeUnpublished bool) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Post:    NewPostRepo(db),
		Comment: NewCommentRepo(db),
	}
}
