package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blog-posts-api/internal/database"
	"github.com/blog-posts-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment and fills in its generated id and timestamps
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, body, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.Body, comment.IsApproved,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
}

// GetByID retrieves a comment by id with its author display fields.
// Returns nil when the row is absent.
func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.body, c.is_approved,
		       c.created_at, c.updated_at, u.id, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`
	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost retrieves every comment on a post, oldest first, with
// author display fields joined in
func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.body, c.is_approved,
		       c.created_at, c.updated_at, u.id, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.id
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Update persists the mutable fields of a comment
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET body = $2, is_approved = $3, updated_at = $4
		WHERE id = $1
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.Body, comment.IsApproved, now,
	)
	if err == nil {
		comment.UpdatedAt = now
	}
	return err
}

// Delete removes a comment by id
func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var comment models.Comment
	var author models.Author

	err := row.Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Body,
		&comment.IsApproved, &comment.CreatedAt, &comment.UpdatedAt,
		&author.ID, &author.Name,
	)
	if err != nil {
		return nil, err
	}
	comment.Author = &author
	return &comment, nil
}
