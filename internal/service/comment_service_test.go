package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
)

func TestGravatarHash_TrimsAndLowercases(t *testing.T) {
	a := service.GravatarHash("User@Example.com ")
	b := service.GravatarHash("user@example.com")

	if a != b {
		t.Errorf("Hashes should match: %s vs %s", a, b)
	}
	if len(a) != 32 {
		t.Errorf("Expected 32 hex chars, got %d", len(a))
	}
	// Known digest for the canonical Gravatar example address.
	if got := service.GravatarHash("MyEmailAddress@example.com "); got != "0bc83cb571cd1c50ba6f3e8a78ef1346" {
		t.Errorf("Unexpected digest: %s", got)
	}
}

func TestCommentService_AddComment_Normalizes(t *testing.T) {
	repos, postRepo, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	seedPost(postRepo, "post-1", "post-1", true, time.Now().Add(-time.Hour), false)

	id, err := svc.AddComment(context.Background(), &models.Comment{
		PostID:   "post-1",
		Name:     "Reader",
		Email:    " Reader@Example.com",
		Homepage: "example.com/blog",
		Body:     `nice post <script>alert("x")</script>`,
	}, false)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	stored, _ := commentRepo.GetByID(context.Background(), id)
	if stored == nil {
		t.Fatal("Comment should be persisted")
	}

	if stored.GravatarHash != service.GravatarHash("reader@example.com") {
		t.Errorf("Gravatar hash not derived from normalized email: %s", stored.GravatarHash)
	}
	if stored.Homepage != "http://example.com/blog" {
		t.Errorf("Homepage should gain an http:// prefix, got %s", stored.Homepage)
	}
	if strings.Contains(stored.Body, "<script") {
		t.Errorf("Body should be sanitized, got %s", stored.Body)
	}
	if stored.CommentDate.IsZero() {
		t.Error("Comment date should be stamped")
	}
}

func TestCommentService_AddComment_HomepageAlreadyPrefixed(t *testing.T) {
	repos, postRepo, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	seedPost(postRepo, "post-1", "post-1", true, time.Now().Add(-time.Hour), false)

	id, err := svc.AddComment(context.Background(), &models.Comment{
		PostID:   "post-1",
		Name:     "Reader",
		Email:    "reader@example.com",
		Homepage: "https://example.com",
		Body:     "hello",
	}, false)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	stored, _ := commentRepo.GetByID(context.Background(), id)
	if stored.Homepage != "https://example.com" {
		t.Errorf("Existing scheme should be kept, got %s", stored.Homepage)
	}
}

func TestCommentService_AddComment_Moderation(t *testing.T) {
	tests := []struct {
		name         string
		moderate     bool
		isAdmin      bool
		wantApproved bool
	}{
		{"moderation off", false, false, true},
		{"moderation on", true, false, false},
		{"moderation on, admin submitter", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, postRepo, _, commentRepo, settingsRepo := testRepos()
			svc := newTestServices(repos).Comment

			seedPost(postRepo, "post-1", "post-1", true, time.Now().Add(-time.Hour), false)
			settingsRepo.Settings = &models.Settings{
				ID: "settings-1", SiteTitle: "Test", PostsPerPage: 10,
				AllowComments: true, ModerateComments: tt.moderate,
			}

			id, err := svc.AddComment(context.Background(), &models.Comment{
				PostID: "post-1", Name: "Reader", Email: "r@example.com", Body: "hi",
			}, tt.isAdmin)
			if err != nil {
				t.Fatalf("AddComment failed: %v", err)
			}

			stored, _ := commentRepo.GetByID(context.Background(), id)
			if stored.IsApproved != tt.wantApproved {
				t.Errorf("Expected approved=%v, got %v", tt.wantApproved, stored.IsApproved)
			}
		})
	}
}

func TestCommentService_AddComment_CommentsClosed(t *testing.T) {
	tests := []struct {
		name          string
		postAllows    bool
		siteAllows    bool
		wantErr       error
		wantPersisted int
	}{
		{"post has comments off", false, true, service.ErrCommentsClosed, 0},
		{"site has comments off", true, false, service.ErrCommentsClosed, 0},
		{"both allow", true, true, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, postRepo, _, commentRepo, settingsRepo := testRepos()
			svc := newTestServices(repos).Comment

			post := seedPost(postRepo, "post-1", "post-1", true, time.Now().Add(-time.Hour), false)
			post.AllowComments = tt.postAllows
			settingsRepo.Settings = &models.Settings{
				ID: "settings-1", SiteTitle: "Test", PostsPerPage: 10,
				AllowComments: tt.siteAllows,
			}

			_, err := svc.AddComment(context.Background(), &models.Comment{
				PostID: "post-1", Name: "Reader", Email: "r@example.com", Body: "hi",
			}, false)
			if err != tt.wantErr {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if commentRepo.CreateCalls != tt.wantPersisted {
				t.Errorf("Expected %d comment writes, got %d", tt.wantPersisted, commentRepo.CreateCalls)
			}
		})
	}
}

func TestCommentService_AddComment_MissingPost(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	_, err := svc.AddComment(context.Background(), &models.Comment{
		PostID: "missing", Name: "Reader", Email: "r@example.com", Body: "hi",
	}, false)
	if err != service.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if commentRepo.CreateCalls != 0 {
		t.Errorf("No comment writes expected, got %d", commentRepo.CreateCalls)
	}
}

func TestCommentService_ListComments_FilterAndOrder(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	now := time.Now()
	ctx := context.Background()
	commentRepo.Create(ctx, &models.Comment{ID: "newest", PostID: "post-1", IsApproved: true, CommentDate: now.Add(-time.Hour)})
	commentRepo.Create(ctx, &models.Comment{ID: "oldest", PostID: "post-1", IsApproved: true, CommentDate: now.Add(-3 * time.Hour)})
	commentRepo.Create(ctx, &models.Comment{ID: "pending", PostID: "post-1", IsApproved: false, CommentDate: now.Add(-2 * time.Hour)})
	commentRepo.Create(ctx, &models.Comment{ID: "deleted", PostID: "post-1", IsApproved: true, IsDeleted: true, CommentDate: now})
	commentRepo.Create(ctx, &models.Comment{ID: "other-post", PostID: "post-2", IsApproved: true, CommentDate: now})

	comments, err := svc.ListComments(ctx, "post-1", models.PublicComments())
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}

	if len(comments) != 2 {
		t.Fatalf("Expected 2 public comments, got %d", len(comments))
	}
	// Display order: oldest first.
	if comments[0].ID != "oldest" || comments[1].ID != "newest" {
		t.Errorf("Expected oldest, newest; got %s, %s", comments[0].ID, comments[1].ID)
	}

	// The moderation view also surfaces the pending comment.
	comments, _ = svc.ListComments(ctx, "post-1", models.AllComments())
	if len(comments) != 3 {
		t.Errorf("Expected 3 comments without the approval filter, got %d", len(comments))
	}

	// Deleted comments only show up when explicitly included.
	comments, _ = svc.ListComments(ctx, "post-1", models.CommentFilter{IncludeDeleted: true})
	if len(comments) != 4 {
		t.Errorf("Expected 4 comments including deleted, got %d", len(comments))
	}
}

func TestCommentService_CountMatchesList(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	now := time.Now()
	ctx := context.Background()
	commentRepo.Create(ctx, &models.Comment{ID: "c1", PostID: "post-1", IsApproved: true, CommentDate: now})
	commentRepo.Create(ctx, &models.Comment{ID: "c2", PostID: "post-1", IsApproved: false, CommentDate: now})
	commentRepo.Create(ctx, &models.Comment{ID: "c3", PostID: "post-1", IsApproved: true, IsDeleted: true, CommentDate: now})

	for _, filter := range []models.CommentFilter{models.PublicComments(), models.AllComments()} {
		listed, err := svc.ListComments(ctx, "post-1", filter)
		if err != nil {
			t.Fatalf("ListComments failed: %v", err)
		}
		count, err := svc.CountComments(ctx, "post-1", filter)
		if err != nil {
			t.Fatalf("CountComments failed: %v", err)
		}
		if count != len(listed) {
			t.Errorf("Count %d disagrees with list length %d for %+v", count, len(listed), filter)
		}
	}
}

func TestCommentService_UnapprovedQueue(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	now := time.Now()
	ctx := context.Background()
	commentRepo.Create(ctx, &models.Comment{ID: "old-pending", PostID: "post-1", CommentDate: now.Add(-2 * time.Hour)})
	commentRepo.Create(ctx, &models.Comment{ID: "new-pending", PostID: "post-2", CommentDate: now.Add(-time.Hour)})
	commentRepo.Create(ctx, &models.Comment{ID: "approved", PostID: "post-1", IsApproved: true, CommentDate: now})
	commentRepo.Create(ctx, &models.Comment{ID: "deleted-pending", PostID: "post-1", IsDeleted: true, CommentDate: now})

	queue, err := svc.ListUnapproved(ctx)
	if err != nil {
		t.Fatalf("ListUnapproved failed: %v", err)
	}

	// Moderation queue: newest first, deleted comments excluded.
	if len(queue) != 2 {
		t.Fatalf("Expected 2 pending comments, got %d", len(queue))
	}
	if queue[0].ID != "new-pending" || queue[1].ID != "old-pending" {
		t.Errorf("Expected new-pending, old-pending; got %s, %s", queue[0].ID, queue[1].ID)
	}

	scoped, err := svc.ListUnapprovedForPost(ctx, "post-1")
	if err != nil {
		t.Fatalf("ListUnapprovedForPost failed: %v", err)
	}
	if len(scoped) != 1 || scoped[0].ID != "old-pending" {
		t.Errorf("Expected only old-pending for post-1, got %d", len(scoped))
	}

	if n, _ := svc.CountUnapproved(ctx); n != 2 {
		t.Errorf("Expected site-wide count 2, got %d", n)
	}
	if n, _ := svc.CountUnapprovedForPost(ctx, "post-1"); n != 1 {
		t.Errorf("Expected post count 1, got %d", n)
	}
}

func TestCommentService_Approve_Idempotent(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	ctx := context.Background()
	commentRepo.Create(ctx, &models.Comment{ID: "c1", PostID: "post-1", IsApproved: false})

	if err := svc.Approve(ctx, "c1", true); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if err := svc.Approve(ctx, "c1", true); err != nil {
		t.Fatalf("Second approve failed: %v", err)
	}

	// Approving twice performs exactly one write.
	if commentRepo.UpdateCalls != 1 {
		t.Errorf("Expected 1 write, got %d", commentRepo.UpdateCalls)
	}

	stored, _ := commentRepo.GetByID(ctx, "c1")
	if !stored.IsApproved {
		t.Error("Comment should be approved")
	}

	// Unapprove flips it back with one more write.
	if err := svc.Approve(ctx, "c1", false); err != nil {
		t.Fatalf("Unapprove failed: %v", err)
	}
	if commentRepo.UpdateCalls != 2 {
		t.Errorf("Expected 2 writes after unapprove, got %d", commentRepo.UpdateCalls)
	}

	if err := svc.Approve(ctx, "missing", true); err != service.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCommentService_SoftDelete_Idempotent(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	ctx := context.Background()
	commentRepo.Create(ctx, &models.Comment{ID: "c1", PostID: "post-1"})

	if err := svc.SoftDelete(ctx, "c1"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	if err := svc.SoftDelete(ctx, "c1"); err != nil {
		t.Fatalf("Second SoftDelete failed: %v", err)
	}

	// Deleting an already-deleted comment performs zero extra writes.
	if commentRepo.UpdateCalls != 1 {
		t.Errorf("Expected 1 write, got %d", commentRepo.UpdateCalls)
	}

	stored, _ := commentRepo.GetByID(ctx, "c1")
	if !stored.IsDeleted {
		t.Error("Comment should be marked deleted")
	}
	if len(commentRepo.Comments) != 1 {
		t.Error("Soft delete must keep the row")
	}

	// A missing comment is a no-op, not an error.
	if err := svc.SoftDelete(ctx, "missing"); err != nil {
		t.Errorf("SoftDelete on missing comment should be a no-op, got %v", err)
	}
}

func TestCommentService_UpdateComment_Overwrites(t *testing.T) {
	repos, _, _, commentRepo, _ := testRepos()
	svc := newTestServices(repos).Comment

	ctx := context.Background()
	commentRepo.Create(ctx, &models.Comment{ID: "c1", PostID: "post-1", Name: "Before", Body: "old"})

	if err := svc.UpdateComment(ctx, &models.Comment{ID: "c1", PostID: "post-1", Name: "After", Body: "new"}); err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}

	stored, _ := commentRepo.GetByID(ctx, "c1")
	if stored.Name != "After" || stored.Body != "new" {
		t.Errorf("Comment should be overwritten, got %+v", stored)
	}
}
