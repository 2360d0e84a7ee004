package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/mocks"
	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/repository"
	"github.com/blog-posts-api/internal/service"
	"github.com/rs/zerolog"
)

var (
	anonymous = auth.Anonymous()
	member    = auth.Caller{ID: 10, IsAuthenticated: true}
	staff     = auth.Caller{ID: 99, IsAuthenticated: true, IsStaff: true}
)

func setupServices() (*service.Services, *mocks.MockPostRepository, *mocks.MockCommentRepository, *mocks.MockUserRepository) {
	postRepo := mocks.NewMockPostRepository()
	commentRepo := mocks.NewMockCommentRepository()
	userRepo := mocks.NewMockUserRepository()

	repos := &repository.Repositories{
		User:    userRepo,
		Post:    postRepo,
		Comment: commentRepo,
	}

	authenticator := testAuthenticator()
	services := service.NewServices(repos, authenticator, zerolog.Nop())

	return services, postRepo, commentRepo, userRepo
}

func seedPost(repo *mocks.MockPostRepository, authorID int64, published bool, createdAt time.Time) *models.Post {
	post := &models.Post{
		ID:          repo.NextID,
		Slug:        "seeded",
		Title:       "Seeded",
		Body:        "Body",
		AuthorID:    authorID,
		Author:      &models.Author{ID: authorID, Name: "Author"},
		IsPublished: published,
		CreatedAt:   createdAt,
	}
	repo.NextID++
	repo.Posts[post.ID] = post
	return post
}

func TestListFiltersUnpublishedForNonStaff(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	now := time.Now()
	seedPost(postRepo, member.ID, true, now.Add(-time.Hour))
	draft := seedPost(postRepo, member.ID, false, now)

	for _, caller := range []auth.Caller{anonymous, member} {
		posts, err := services.Post.List(ctx, caller)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("Expected 1 visible post for %s, got %d", caller.Role(), len(posts))
		}
		if posts[0].ID == draft.ID {
			t.Errorf("Draft must not be listed for %s", caller.Role())
		}
	}

	posts, err := services.Post.List(ctx, staff)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("Expected staff to see 2 posts, got %d", len(posts))
	}
}

func TestListOrdersNewestFirstWithIDTieBreak(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	older := seedPost(postRepo, member.ID, true, ts.Add(-time.Minute))
	first := seedPost(postRepo, member.ID, true, ts)
	second := seedPost(postRepo, member.ID, true, ts) // same timestamp, higher id

	posts, err := services.Post.List(ctx, anonymous)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []int64{second.ID, first.ID, older.ID}
	if len(posts) != len(want) {
		t.Fatalf("Expected %d posts, got %d", len(want), len(posts))
	}
	for i, id := range want {
		if posts[i].ID != id {
			t.Errorf("Position %d: expected post %d, got %d", i, id, posts[i].ID)
		}
	}
}

func TestListProjectsToSummary(t *testing.T) {
	services, postRepo, _, _ := setupServices()

	seedPost(postRepo, member.ID, true, time.Now())

	posts, err := services.Post.List(context.Background(), anonymous)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	raw, _ := json.Marshal(posts[0])
	var fields map[string]interface{}
	json.Unmarshal(raw, &fields)

	if _, hasBody := fields["body"]; hasBody {
		t.Error("List projection must not include the post body")
	}
	if fields["author"] == nil {
		t.Error("List projection must include author display fields")
	}
}

func TestRetrieveHidesDraftFromNonStaff(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	draft := seedPost(postRepo, member.ID, false, time.Now())

	// Hidden posts read as not found, never forbidden: the author
	// gets no visibility carve-out for their own draft.
	for _, caller := range []auth.Caller{anonymous, member} {
		_, err := services.Post.Retrieve(ctx, caller, draft.ID)
		if !errors.Is(err, service.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for %s, got %v", caller.Role(), err)
		}
	}

	detail, err := services.Post.Retrieve(ctx, staff, draft.ID)
	if err != nil {
		t.Fatalf("Staff retrieve failed: %v", err)
	}
	if detail.ID != draft.ID {
		t.Errorf("Expected post %d, got %d", draft.ID, detail.ID)
	}
}

func TestRetrieveIncludesAllComments(t *testing.T) {
	services, postRepo, commentRepo, _ := setupServices()
	ctx := context.Background()

	post := seedPost(postRepo, member.ID, true, time.Now())
	commentRepo.Create(ctx, &models.Comment{PostID: post.ID, AuthorID: 777, Body: "first", IsApproved: true})
	commentRepo.Create(ctx, &models.Comment{PostID: post.ID, AuthorID: 888, Body: "second", IsApproved: false})

	// Comment visibility on a readable post is not gated by the
	// author-or-staff rule; an anonymous reader sees every comment,
	// approved or not.
	detail, err := services.Post.Retrieve(ctx, anonymous, post.ID)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if len(detail.Comments) != 2 {
		t.Errorf("Expected 2 comments, got %d", len(detail.Comments))
	}
}

func TestRetrieveIsIdempotent(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	post := seedPost(postRepo, member.ID, true, time.Now())

	first, err := services.Post.Retrieve(ctx, anonymous, post.ID)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	second, err := services.Post.Retrieve(ctx, anonymous, post.ID)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("Repeated retrieve produced different payloads:\n%s\n%s", a, b)
	}
}

func TestCreateRequiresAuthentication(t *testing.T) {
	services, _, _, _ := setupServices()

	_, err := services.Post.Create(context.Background(), anonymous, &models.PostInput{Title: "T", Body: "B"})
	if !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("Expected ErrAuthRequired, got %v", err)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	services, _, _, _ := setupServices()

	_, err := services.Post.Create(context.Background(), member, &models.PostInput{Title: " ", Body: ""})

	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 2 {
		t.Errorf("Expected 2 field errors, got %d", len(validationErr.Fields))
	}
}

func TestCreateSetsAuthorAndDefaultsUnpublished(t *testing.T) {
	services, _, _, _ := setupServices()

	published := true
	post, err := services.Post.Create(context.Background(), member, &models.PostInput{
		Title:       "My First Post",
		Body:        "Hello",
		IsPublished: &published, // ignored for non-staff
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if post.AuthorID != member.ID {
		t.Errorf("Expected author %d, got %d", member.ID, post.AuthorID)
	}
	if post.IsPublished {
		t.Error("Non-staff create must default to unpublished")
	}
	if post.Slug != "my-first-post" {
		t.Errorf("Expected generated slug 'my-first-post', got %q", post.Slug)
	}
}

func TestStaffCreateCanPublishExplicitly(t *testing.T) {
	services, _, _, _ := setupServices()
	ctx := context.Background()

	published := true
	post, err := services.Post.Create(ctx, staff, &models.PostInput{Title: "T", Body: "B", IsPublished: &published})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !post.IsPublished {
		t.Error("Staff must be able to publish on creation")
	}

	// Without the explicit flag, staff posts start unpublished too.
	post, err = services.Post.Create(ctx, staff, &models.PostInput{Title: "T2", Body: "B"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.IsPublished {
		t.Error("Publication must be explicit even for staff")
	}
}

// A non-staff author cannot fetch the post they just created while it
// is unpublished. Deliberate behavior, not a bug: the visible set has
// no author exception.
func TestCreateThenRetrieveAsNonStaffOwner(t *testing.T) {
	services, _, _, _ := setupServices()
	ctx := context.Background()

	post, err := services.Post.Create(ctx, member, &models.PostInput{Title: "Draft", Body: "B"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := services.Post.Retrieve(ctx, member, post.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for owner's own draft, got %v", err)
	}
}

func TestUpdateIsStaffOnly(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	post := seedPost(postRepo, member.ID, true, time.Now())
	title := "Edited"

	// The author themselves is rejected under staff-or-read-only.
	err := services.Post.Update(ctx, member, post.ID, &models.PostPatch{Title: &title})
	if !errors.Is(err, service.ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied for author, got %v", err)
	}

	err = services.Post.Update(ctx, anonymous, post.ID, &models.PostPatch{Title: &title})
	if !errors.Is(err, service.ErrAuthRequired) {
		t.Errorf("Expected ErrAuthRequired for anonymous, got %v", err)
	}

	if err := services.Post.Update(ctx, staff, post.ID, &models.PostPatch{Title: &title}); err != nil {
		t.Fatalf("Staff update failed: %v", err)
	}
	if postRepo.Posts[post.ID].Title != "Edited" {
		t.Errorf("Expected updated title, got %q", postRepo.Posts[post.ID].Title)
	}
}

func TestUpdatePartialLeavesOtherFields(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	post := seedPost(postRepo, member.ID, true, time.Now())
	body := "new body"

	if err := services.Post.Update(ctx, staff, post.ID, &models.PostPatch{Body: &body}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored := postRepo.Posts[post.ID]
	if stored.Body != "new body" {
		t.Errorf("Expected patched body, got %q", stored.Body)
	}
	if stored.Title != "Seeded" || stored.Slug != "seeded" || !stored.IsPublished {
		t.Error("Patch must leave unmentioned fields untouched")
	}
	if stored.AuthorID != member.ID {
		t.Error("Author must remain immutable across updates")
	}
}

func TestDeleteIsStaffOnly(t *testing.T) {
	services, postRepo, _, _ := setupServices()
	ctx := context.Background()

	post := seedPost(postRepo, member.ID, true, time.Now())

	if err := services.Post.Delete(ctx, member, post.ID); !errors.Is(err, service.ErrPermissionDenied) {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
	if err := services.Post.Delete(ctx, staff, post.ID); err != nil {
		t.Fatalf("Staff delete failed: %v", err)
	}
	if _, exists := postRepo.Posts[post.ID]; exists {
		t.Error("Post must be removed after delete")
	}
}

func TestWriteOnMissingPostIsNotFound(t *testing.T) {
	services, _, _, _ := setupServices()
	ctx := context.Background()
	title := "x"

	if err := services.Post.Update(ctx, staff, 12345, &models.PostPatch{Title: &title}); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on update, got %v", err)
	}
	if err := services.Post.Delete(ctx, staff, 12345); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on delete, got %v", err)
	}
}
