package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blog-platform-api/internal/daterange"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/slug"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PostQuery holds the filter, ordering and pagination criteria for listing
// posts. The zero value of Page/PageSize means "not set".
type PostQuery struct {
	// IncludeContentPages keeps static content pages in the result. They are
	// excluded from the chronological stream by default.
	IncludeContentPages bool

	// PublishedOnly restricts the result to posts that are published and not
	// future-dated.
	PublishedOnly bool

	// OrderByPublishedDesc sorts newest first. When false, source order is
	// preserved.
	OrderByPublishedDesc bool

	// Page is a 1-based page number. It only takes effect together with
	// PageSize: the row offset is (Page-1)*PageSize.
	Page int

	// PageSize limits the number of posts returned. Zero means no limit.
	PageSize int
}

// DefaultPostQuery returns the criteria used by the public blog stream:
// published posts only, newest first, no content pages.
func DefaultPostQuery() PostQuery {
	return PostQuery{PublishedOnly: true, OrderByPublishedDesc: true}
}

// postService is the concrete implementation of PostService
type postService struct {
	repos *repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

func newPostService(repos *repository.Repositories, log zerolog.Logger) *postService {
	return &postService{
		repos: repos,
		log:   log.With().Str("service", "post").Logger(),
		now:   time.Now,
	}
}

// GetPost retrieves a post by id. Returns nil when the id does not resolve.
func (s *postService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.repos.Post.GetByID(ctx, id)
}

// ListPosts filters, orders and paginates the post collection according to q.
func (s *postService) ListPosts(ctx context.Context, q PostQuery) ([]*models.Post, error) {
	posts, err := s.repos.Post.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	return applyQuery(posts, q, s.now()), nil
}

// applyQuery is the in-memory query engine shared by the listing paths.
func applyQuery(posts []*models.Post, q PostQuery, now time.Time) []*models.Post {
	result := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p.IsContentPage && !q.IncludeContentPages {
			continue
		}
		if q.PublishedOnly && !p.VisibleAt(now) {
			continue
		}
		result = append(result, p)
	}

	if q.OrderByPublishedDesc {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PublishedDate.After(result[j].PublishedDate)
		})
	}

	// Page-based pagination: Page is a 1-based page number, so the offset is
	// (Page-1)*PageSize. Without a page size there is nothing to skip.
	if q.Page > 0 && q.PageSize > 0 {
		offset := (q.Page - 1) * q.PageSize
		if offset >= len(result) {
			return []*models.Post{}
		}
		result = result[offset:]
	}
	if q.PageSize > 0 && len(result) > q.PageSize {
		result = result[:q.PageSize]
	}

	return result
}

// ListPostsByDate returns the posts whose published date falls within the
// window described by year/month/day (zero parts are absent). Content pages
// are always excluded. An absent year or an invalid calendar combination is
// reported as ErrInvalidDate without touching the store.
func (s *postService) ListPostsByDate(ctx context.Context, year, month, day int, publishedOnly bool) ([]*models.Post, error) {
	r, err := daterange.Resolve(year, month, day)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, daterange.ErrInvalidDate
	}

	posts, err := s.repos.Post.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	result := make([]*models.Post, 0)
	for _, p := range posts {
		if p.IsContentPage || !r.Contains(p.PublishedDate) {
			continue
		}
		if publishedOnly && !p.IsPublished {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// GetPostByPermalink resolves a post by its dated permalink. A permalink
// always requires a resolvable date range: an absent year or an invalid date
// yields nil without touching the store. When publishedOnly is set, only
// published posts resolve; admin callers pass false to preview drafts.
func (s *postService) GetPostByPermalink(ctx context.Context, year, month, day int, urlSegment string, publishedOnly bool) (*models.Post, error) {
	r, err := daterange.Resolve(year, month, day)
	if err != nil || r == nil {
		return nil, nil
	}

	posts, err := s.repos.Post.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	for _, p := range posts {
		if p.IsContentPage || !r.Contains(p.PublishedDate) {
			continue
		}
		if publishedOnly && !p.IsPublished {
			continue
		}
		if p.UrlSegment == urlSegment {
			return p, nil
		}
	}
	return nil, nil
}

// GetPostBySlug resolves a post by URL segment alone, ignoring dates. Content
// pages are reached through this path with contentPageOnly set. Publish
// visibility is the caller's concern.
func (s *postService) GetPostBySlug(ctx context.Context, urlSegment string, contentPageOnly bool) (*models.Post, error) {
	posts, err := s.repos.Post.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	for _, p := range posts {
		if contentPageOnly && !p.IsContentPage {
			continue
		}
		if p.UrlSegment == urlSegment {
			return p, nil
		}
	}
	return nil, nil
}

// CreatePost assigns an id, derives a unique URL segment from the title and
// persists the post. Returns the new post's id.
func (s *postService) CreatePost(ctx context.Context, post *models.Post) (string, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	segment, err := s.uniqueSlug(ctx, slug.Make(post.Title))
	if err != nil {
		return "", err
	}
	post.UrlSegment = segment

	now := s.now()
	post.LastModifiedDate = now
	if post.PublishedDate.IsZero() {
		post.PublishedDate = now
	}

	if err := s.repos.Post.Create(ctx, post); err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("url_segment", post.UrlSegment).Msg("Post created")
	return post.ID, nil
}

// UpdatePost snapshots the stored state as a version, then overwrites the
// post with the supplied fields. The URL segment is re-derived when the title
// changed. Returns ErrNotFound when the id does not resolve.
func (s *postService) UpdatePost(ctx context.Context, post *models.Post) error {
	existing, err := s.repos.Post.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	// Save before overwrite: the pre-edit state stays reachable as a version.
	snapshot := models.VersionFromPost(existing)
	snapshot.ID = uuid.NewString()
	if err := s.repos.Version.Create(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to snapshot post before update: %w", err)
	}

	// Re-derive only when the title itself changed. Comparing derived slugs
	// (not the stored segment) keeps a segment that was suffixed for
	// uniqueness stable across edits, so permalinks survive no-op updates.
	if base := slug.Make(post.Title); base != slug.Make(existing.Title) {
		segment, err := s.uniqueSlug(ctx, base)
		if err != nil {
			return err
		}
		post.UrlSegment = segment
	} else {
		post.UrlSegment = existing.UrlSegment
	}

	post.LastModifiedDate = s.now()
	if post.PublishedDate.IsZero() {
		post.PublishedDate = existing.PublishedDate
	}

	if err := s.repos.Post.Update(ctx, post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Msg("Post updated")
	return nil
}

// DeletePost removes a post together with its versions and comments.
// Returns ErrNotFound when the id does not resolve.
func (s *postService) DeletePost(ctx context.Context, id string) error {
	existing, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repos.Version.DeleteAllForPost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete versions: %w", err)
	}
	if err := s.repos.Comment.DeleteAllForPost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	if err := s.repos.Post.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
}

// uniqueSlug appends a numeric suffix until the segment is unused. Duplicate
// segments would make permalink resolution pick an arbitrary match, so they
// are rejected at write time.
func (s *postService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "post"
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.repos.Post.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check url segment: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
