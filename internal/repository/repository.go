package repository

import (
	"context"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// PostRepository defines the interface for post and content-page data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// VersionRepository defines the interface for post version snapshots
type VersionRepository interface {
	Create(ctx context.Context, version *models.Version) error
	Update(ctx context.Context, version *models.Version) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Version, error)
	GetAll(ctx context.Context) ([]*models.Version, error)
	DeleteAllForPost(ctx context.Context, postID string) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	GetAll(ctx context.Context) ([]*models.Comment, error)
	DeleteAllForPost(ctx context.Context, postID string) error
}

// SettingsRepository defines the interface for the site settings record
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	AddOrUpdate(ctx context.Context, settings *models.Settings) error
}

// UserRepository defines the interface for user lookups
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post     PostRepository
	Version  VersionRepository
	Comment  CommentRepository
	Settings SettingsRepository
	User     UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Post:     NewPostRepo(db),
		Version:  NewVersionRepo(db),
		Comment:  NewCommentRepo(db),
		Settings: NewSettingsRepo(db),
		User:     NewUserRepo(db),
	}
}
