package service

import (
	"context"
	"errors"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned by mutating operations when the target id does not
// resolve. Read operations return nil instead.
var ErrNotFound = errors.New("not found")

// ErrCommentsClosed is returned when a comment is submitted to a post that
// does not accept comments, either per-post or site-wide.
var ErrCommentsClosed = errors.New("comments closed")

// PostService defines the interface for post queries and authoring
type PostService interface {
	GetPost(ctx context.Context, id string) (*models.Post, error)
	ListPosts(ctx context.Context, q PostQuery) ([]*models.Post, error)
	ListPostsByDate(ctx context.Context, year, month, day int, publishedOnly bool) ([]*models.Post, error)
	GetPostByPermalink(ctx context.Context, year, month, day int, urlSegment string, publishedOnly bool) (*models.Post, error)
	GetPostBySlug(ctx context.Context, urlSegment string, contentPageOnly bool) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) (string, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
}

// VersionService defines the interface for the post version lifecycle
type VersionService interface {
	GetVersion(ctx context.Context, id string) (*models.Version, error)
	SnapshotPost(ctx context.Context, post *models.Post) (string, error)
	SnapshotPostByID(ctx context.Context, postID string) (string, error)
	PublishVersion(ctx context.Context, versionID string) error
	ListVersions(ctx context.Context, postID string) ([]*models.Version, error)
	UpdateVersion(ctx context.Context, version *models.Version) error
	DeleteVersion(ctx context.Context, versionID string) error
	DeleteAllVersions(ctx context.Context, postID string) error
}

// CommentService defines the interface for comment moderation
type CommentService interface {
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	ListComments(ctx context.Context, postID string, filter models.CommentFilter) ([]*models.Comment, error)
	CountComments(ctx context.Context, postID string, filter models.CommentFilter) (int, error)
	ListUnapproved(ctx context.Context) ([]*models.Comment, error)
	ListUnapprovedForPost(ctx context.Context, postID string) ([]*models.Comment, error)
	CountUnapproved(ctx context.Context) (int, error)
	CountUnapprovedForPost(ctx context.Context, postID string) (int, error)
	AddComment(ctx context.Context, comment *models.Comment, isAdmin bool) (string, error)
	UpdateComment(ctx context.Context, comment *models.Comment) error
	Approve(ctx context.Context, commentID string, approved bool) error
	SoftDelete(ctx context.Context, commentID string) error
}

// SettingsService defines the interface for site settings management
type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	AddOrUpdate(ctx context.Context, settings *models.Settings) error
}

// Services holds all service interfaces
type Services struct {
	Post     PostService
	Version  VersionService
	Comment  CommentService
	Settings SettingsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	settingsSvc := newSettingsService(repos, log)

	return &Services{
		Post:     newPostService(repos, log),
		Version:  newVersionService(repos, log),
		Comment:  newCommentService(repos, settingsSvc, log),
		Settings: settingsSvc,
	}
}
