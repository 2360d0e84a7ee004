package service

import (
	"context"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/policy"
	"github.com/blog-posts-api/internal/repository"
	"github.com/blog-posts-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, posts repository.PostRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Create stores a new comment authored by the caller. Comments always
// start unapproved, whatever the request claims.
func (s *commentService) Create(ctx context.Context, caller auth.Caller, in *models.CommentInput) (*models.Comment, error) {
	if !policy.CanAccessComment(caller, nil, policy.ActionCreate) {
		return nil, denied(caller.IsAuthenticated)
	}
	if err := newValidationError(validation.ValidateCommentInput(in)); err != nil {
		return nil, err
	}

	// The parent post must be inside the caller's visible set.
	post, err := s.posts.GetByID(ctx, in.PostID, policy.IncludeUnpublished(caller))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, newValidationError([]validation.ValidationError{
			{Field: "post_id", Message: "referenced post does not exist", Value: in.PostID},
		})
	}

	comment := &models.Comment{
		PostID:     in.PostID,
		AuthorID:   caller.ID,
		Body:       in.Body,
		IsApproved: false,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", comment.ID).
		Int64("post_id", comment.PostID).
		Int64("author_id", caller.ID).
		Msg("Comment created")

	return comment, nil
}

// Retrieve returns a comment to its author or staff
func (s *commentService) Retrieve(ctx context.Context, caller auth.Caller, id int64) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if !policy.CanAccess(caller, comment, policy.ActionRetrieve) {
		return nil, denied(caller.IsAuthenticated)
	}
	return comment, nil
}

// Update applies a full or partial update to a comment. For non-staff
// callers the is_approved field is stripped from the patch before
// anything is validated or applied, so an owner cannot self-approve;
// the request still succeeds.
func (s *commentService) Update(ctx context.Context, caller auth.Caller, id int64, patch *models.CommentPatch) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if !policy.CanAccess(caller, comment, policy.ActionUpdate) {
		return nil, denied(caller.IsAuthenticated)
	}

	if !caller.IsStaff {
		patch.IsApproved = nil
	}
	if err := newValidationError(validation.ValidateCommentPatch(patch)); err != nil {
		return nil, err
	}

	if patch.Body != nil {
		comment.Body = *patch.Body
	}
	if patch.IsApproved != nil {
		comment.IsApproved = *patch.IsApproved
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Int64("comment_id", comment.ID).Msg("Comment updated")
	return comment, nil
}

// Delete removes a comment on behalf of its author or staff
func (s *commentService) Delete(ctx context.Context, caller auth.Caller, id int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if !policy.CanAccess(caller, comment, policy.ActionDelete) {
		return denied(caller.IsAuthenticated)
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("comment_id", id).Msg("Comment deleted")
	return nil
}
