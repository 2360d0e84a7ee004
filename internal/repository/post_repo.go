package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blog-posts-api/internal/database"
	"github.com/blog-posts-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post and fills in its generated id and timestamps
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (slug, title, body, author_id, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		post.Slug, post.Title, post.Body, post.AuthorID, post.IsPublished,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

// List retrieves posts with their author display fields in a single
// query, newest first with id as tie-breaker
func (r *postRepo) List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error) {
	query := `
		SELECT p.id, p.slug, p.title, p.body, p.author_id, p.is_published,
		       p.created_at, p.updated_at, u.id, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE ($1 OR p.is_published)
		ORDER BY p.created_at DESC, p.id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, includeUnpublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a post by id with its author display fields.
// Returns nil when the row is absent or filtered out by visibility.
func (r *postRepo) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*models.Post, error) {
	query := `
		SELECT p.id, p.slug, p.title, p.body, p.author_id, p.is_published,
		       p.created_at, p.updated_at, u.id, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1 AND ($2 OR p.is_published)
	`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, includeUnpublished))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update persists the mutable fields of a post. The author column is
// never written after creation.
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET slug = $2, title = $3, body = $4, is_published = $5, updated_at = $6
		WHERE id = $1
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Slug, post.Title, post.Body, post.IsPublished, now,
	)
	if err == nil {
		post.UpdatedAt = now
	}
	return err
}

// Delete removes a post by id
func (r *postRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var author models.Author

	err := row.Scan(
		&post.ID, &post.Slug, &post.Title, &post.Body, &post.AuthorID,
		&post.IsPublished, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Name,
	)
	if err != nil {
		return nil, err
	}
	post.Author = &author
	return &post, nil
}
