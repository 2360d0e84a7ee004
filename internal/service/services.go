package service

import (
	"context"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/repository"
	"github.com/rs/zerolog"
)

// PostService defines the interface for post operations
type PostService interface {
	List(ctx context.Context, caller auth.Caller) ([]*models.PostSummary, error)
	Retrieve(ctx context.Context, caller auth.Caller, id int64) (*models.PostDetail, error)
	Create(ctx context.Context, caller auth.Caller, in *models.PostInput) (*models.Post, error)
	Update(ctx context.Context, caller auth.Caller, id int64, patch *models.PostPatch) error
	Delete(ctx context.Context, caller auth.Caller, id int64) error
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Create(ctx context.Context, caller auth.Caller, in *models.CommentInput) (*models.Comment, error)
	Retrieve(ctx context.Context, caller auth.Caller, id int64) (*models.Comment, error)
	Update(ctx context.Context, caller auth.Caller, id int64, patch *models.CommentPatch) (*models.Comment, error)
	Delete(ctx context.Context, caller auth.Caller, id int64) error
}

// UserService defines the interface for account operations
type UserService interface {
	Register(ctx context.Context, in *models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in *models.LoginInput) (string, *models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Post    PostService
	Comment CommentService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, authenticator *auth.Authenticator, log zerolog.Logger) *Services {
	return &Services{
		Post:    newPostService(repos.Post, repos.Comment, log),
		Comment: newCommentService(repos.Comment, repos.Post, log),
		User:    newUserService(repos.User, authenticator, log),
	}
}
