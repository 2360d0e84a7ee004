package service

import (
	"context"
	"strings"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/policy"
	"github.com/blog-posts-api/internal/repository"
	"github.com/blog-posts-api/internal/validation"
	"github.com/rs/zerolog"
)

// postService is the concrete implementation of PostService
type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	log      zerolog.Logger
}

// newPostService creates a new PostService
func newPostService(posts repository.PostRepository, comments repository.CommentRepository, log zerolog.Logger) *postService {
	return &postService{
		posts:    posts,
		comments: comments,
		log:      log.With().Str("service", "post").Logger(),
	}
}

// List returns the caller's visible posts, newest first, projected to
// their summary fields
func (s *postService) List(ctx context.Context, caller auth.Caller) ([]*models.PostSummary, error) {
	posts, err := s.posts.List(ctx, policy.IncludeUnpublished(caller))
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, post.Summary())
	}
	return summaries, nil
}

// Retrieve returns the full detail of a post with its comments. The
// visibility filter runs inside the fetch, so an unpublished post
// requested by a non-staff caller is reported as not found rather
// than forbidden.
func (s *postService) Retrieve(ctx context.Context, caller auth.Caller, id int64) (*models.PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id, policy.IncludeUnpublished(caller))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !policy.CanAccess(caller, post, policy.ActionRetrieve) {
		return nil, denied(caller.IsAuthenticated)
	}

	// Every comment on a readable post is readable; the author-or-staff
	// rule only gates comment mutation and direct comment endpoints.
	comments, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return &models.PostDetail{Post: *post, Comments: comments}, nil
}

// Create stores a new post authored by the caller. Only staff may
// publish on creation; for everyone else the post starts unpublished.
func (s *postService) Create(ctx context.Context, caller auth.Caller, in *models.PostInput) (*models.Post, error) {
	if !policy.CanAccessPost(caller, policy.ActionCreate) {
		return nil, denied(caller.IsAuthenticated)
	}
	if err := newValidationError(validation.ValidatePostInput(in)); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = models.Slugify(in.Title)
	}

	isPublished := false
	if caller.IsStaff && in.IsPublished != nil {
		isPublished = *in.IsPublished
	}

	post := &models.Post{
		Slug:        slug,
		Title:       strings.TrimSpace(in.Title),
		Body:        in.Body,
		AuthorID:    caller.ID,
		IsPublished: isPublished,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("post_id", post.ID).
		Int64("author_id", caller.ID).
		Bool("is_published", post.IsPublished).
		Msg("Post created")

	return post, nil
}

// Update applies a full or partial update to a post. The author
// reference is immutable and not part of the patch.
func (s *postService) Update(ctx context.Context, caller auth.Caller, id int64, patch *models.PostPatch) error {
	post, err := s.posts.GetByID(ctx, id, policy.IncludeUnpublished(caller))
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !policy.CanAccess(caller, post, policy.ActionUpdate) {
		return denied(caller.IsAuthenticated)
	}
	if err := newValidationError(validation.ValidatePostPatch(patch)); err != nil {
		return err
	}

	if patch.Title != nil {
		post.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil {
		post.Slug = *patch.Slug
	}
	if patch.Body != nil {
		post.Body = *patch.Body
	}
	if patch.IsPublished != nil {
		post.IsPublished = *patch.IsPublished
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return err
	}

	s.log.Info().Int64("post_id", post.ID).Msg("Post updated")
	return nil
}

// Delete removes a post
func (s *postService) Delete(ctx context.Context, caller auth.Caller, id int64) error {
	post, err := s.posts.GetByID(ctx, id, policy.IncludeUnpublished(caller))
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !policy.CanAccess(caller, post, policy.ActionDelete) {
		return denied(caller.IsAuthenticated)
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("post_id", id).Msg("Post deleted")
	return nil
}
