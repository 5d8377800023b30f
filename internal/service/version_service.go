package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// versionService is the concrete implementation of VersionService
type versionService struct {
	repos *repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

func newVersionService(repos *repository.Repositories, log zerolog.Logger) *versionService {
	return &versionService{
		repos: repos,
		log:   log.With().Str("service", "version").Logger(),
		now:   time.Now,
	}
}

// GetVersion retrieves a version by id. Returns nil when the id does not
// resolve.
func (s *versionService) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	return s.repos.Version.GetByID(ctx, id)
}

// SnapshotPost copies the post's content fields into a new version record.
// The source post is never mutated. Returns the new version's id.
func (s *versionService) SnapshotPost(ctx context.Context, post *models.Post) (string, error) {
	version := models.VersionFromPost(post)
	version.ID = uuid.NewString()

	if err := s.repos.Version.Create(ctx, version); err != nil {
		return "", fmt.Errorf("failed to create version: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("version_id", version.ID).Msg("Post snapshotted")
	return version.ID, nil
}

// SnapshotPostByID loads the post and snapshots it. Returns ErrNotFound when
// the id does not resolve.
func (s *versionService) SnapshotPostByID(ctx context.Context, postID string) (string, error) {
	post, err := s.repos.Post.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", ErrNotFound
	}
	return s.SnapshotPost(ctx, post)
}

// PublishVersion copies a version's content back onto its parent post. The
// parent's pre-publish state is snapshotted first so both it and the
// published version remain in the history. The parent keeps its identity;
// the version's id never propagates.
func (s *versionService) PublishVersion(ctx context.Context, versionID string) error {
	version, err := s.repos.Version.GetByID(ctx, versionID)
	if err != nil {
		return err
	}
	if version == nil {
		return ErrNotFound
	}

	parent, err := s.repos.Post.GetByID(ctx, version.VersionOfID)
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrNotFound
	}

	// Save before overwrite.
	if _, err := s.SnapshotPost(ctx, parent); err != nil {
		return err
	}

	version.ApplyTo(parent)
	parent.LastModifiedDate = s.now()

	if err := s.repos.Post.Update(ctx, parent); err != nil {
		return fmt.Errorf("failed to publish version: %w", err)
	}

	s.log.Info().Str("post_id", parent.ID).Str("version_id", versionID).Msg("Version published")
	return nil
}

// ListVersions returns every version of a post, newest modification first.
// The result is never nil.
func (s *versionService) ListVersions(ctx context.Context, postID string) ([]*models.Version, error) {
	versions, err := s.repos.Version.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load versions: %w", err)
	}

	result := make([]*models.Version, 0)
	for _, v := range versions {
		if v.VersionOfID == postID {
			result = append(result, v)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastModifiedDate.After(result[j].LastModifiedDate)
	})

	return result, nil
}

// UpdateVersion persists edits to a draft version. Returns ErrNotFound when
// the id does not resolve.
func (s *versionService) UpdateVersion(ctx context.Context, version *models.Version) error {
	existing, err := s.repos.Version.GetByID(ctx, version.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	version.VersionOfID = existing.VersionOfID
	version.LastModifiedDate = s.now()

	return s.repos.Version.Update(ctx, version)
}

// DeleteVersion discards a single version. Returns ErrNotFound when the id
// does not resolve.
func (s *versionService) DeleteVersion(ctx context.Context, versionID string) error {
	existing, err := s.repos.Version.GetByID(ctx, versionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Version.Delete(ctx, versionID)
}

// DeleteAllVersions removes every version of a post
func (s *versionService) DeleteAllVersions(ctx context.Context, postID string) error {
	return s.repos.Version.DeleteAllForPost(ctx, postID)
}
