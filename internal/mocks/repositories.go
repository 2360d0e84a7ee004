package mocks

import (
	"context"
	"sort"

	"github.com/blog-posts-api/internal/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[int64]*models.User
	EmailToUser map[string]*models.User
	NextID      int64
	Err         error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[int64]*models.User),
		EmailToUser: make(map[string]*models.User),
		NextID:      1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.Users[id], m.Err
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.EmailToUser[email], m.Err
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, exists := m.EmailToUser[email]
	return exists, m.Err
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	Posts  map[int64]*models.Post
	NextID int64
	Err    error
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts:  make(map[int64]*models.Post),
		NextID: 1,
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	post.ID = m.NextID
	m.NextID++
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) List(ctx context.Context, includeUnpublished bool) ([]*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var posts []*models.Post
	for _, p := range m.Posts {
		if includeUnpublished || p.IsPublished {
			posts = append(posts, p)
		}
	}
	// Newest first, id as tie-breaker, matching the real query
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	post, ok := m.Posts[id]
	if !ok || (!includeUnpublished && !post.IsPublished) {
		return nil, nil
	}
	return post, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Posts, id)
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[int64]*models.Comment
	NextID   int64
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	comment.ID = m.NextID
	m.NextID++
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	return m.Comments[id], m.Err
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var comments []*models.Comment
	for _, c := range m.Comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Comments, id)
	return nil
}
