package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos     *repository.Repositories
	settings  SettingsService
	sanitizer *bluemonday.Policy
	log       zerolog.Logger
	now       func() time.Time
}

func newCommentService(repos *repository.Repositories, settings SettingsService, log zerolog.Logger) *commentService {
	return &commentService{
		repos:     repos,
		settings:  settings,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log.With().Str("service", "comment").Logger(),
		now:       time.Now,
	}
}

// GravatarHash returns the hex MD5 digest of the trimmed, lower-cased email.
// MD5 is what the public Gravatar image service keys avatars on; nothing
// security-relevant depends on it.
func GravatarHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// GetComment retrieves a comment by id. Returns nil when the id does not
// resolve.
func (s *commentService) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return s.repos.Comment.GetByID(ctx, id)
}

// ListComments returns a post's comments passing the filter, oldest first.
func (s *commentService) ListComments(ctx context.Context, postID string, filter models.CommentFilter) ([]*models.Comment, error) {
	comments, err := s.forPost(ctx, postID, filter)
	if err != nil {
		return nil, err
	}
	sortByDate(comments, false)
	return comments, nil
}

// CountComments returns the number of a post's comments passing the filter.
// List and Count share the same filter semantics: a comment shows up in the
// count exactly when it would show up in the listing.
func (s *commentService) CountComments(ctx context.Context, postID string, filter models.CommentFilter) (int, error) {
	comments, err := s.forPost(ctx, postID, filter)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

// ListUnapproved returns the site-wide moderation queue, newest first.
func (s *commentService) ListUnapproved(ctx context.Context) ([]*models.Comment, error) {
	return s.unapproved(ctx, "")
}

// ListUnapprovedForPost returns a single post's moderation queue, newest
// first.
func (s *commentService) ListUnapprovedForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.unapproved(ctx, postID)
}

// CountUnapproved returns the size of the site-wide moderation queue.
func (s *commentService) CountUnapproved(ctx context.Context) (int, error) {
	comments, err := s.unapproved(ctx, "")
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

// CountUnapprovedForPost returns the size of a post's moderation queue.
func (s *commentService) CountUnapprovedForPost(ctx context.Context, postID string) (int, error) {
	comments, err := s.unapproved(ctx, postID)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

// AddComment normalizes and persists a submitted comment: gravatar hash from
// the email, homepage scheme prefix, body sanitized, comment date stamped.
// Approval depends on the site moderation setting unless the submitter is an
// admin. Returns the new comment's id, ErrNotFound when the parent post does
// not resolve, or ErrCommentsClosed when the post or the site has comments
// turned off.
func (s *commentService) AddComment(ctx context.Context, comment *models.Comment, isAdmin bool) (string, error) {
	post, err := s.repos.Post.GetByID(ctx, comment.PostID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", ErrNotFound
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	if !settings.AllowComments || !post.AllowComments {
		return "", ErrCommentsClosed
	}

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	comment.GravatarHash = GravatarHash(comment.Email)
	if comment.Homepage != "" && !strings.HasPrefix(strings.ToLower(comment.Homepage), "http") {
		comment.Homepage = "http://" + comment.Homepage
	}
	comment.Body = s.sanitizer.Sanitize(comment.Body)
	comment.CommentDate = s.now()
	comment.IsApproved = !settings.ModerateComments || isAdmin
	comment.IsDeleted = false

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return "", fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("post_id", comment.PostID).
		Bool("approved", comment.IsApproved).
		Msg("Comment added")
	return comment.ID, nil
}

// UpdateComment persists the comment as supplied, overwriting every field.
func (s *commentService) UpdateComment(ctx context.Context, comment *models.Comment) error {
	return s.repos.Comment.Update(ctx, comment)
}

// Approve sets the approval flag. The write is skipped when the flag already
// has the requested value. Returns ErrNotFound when the id does not resolve.
func (s *commentService) Approve(ctx context.Context, commentID string, approved bool) error {
	comment, err := s.repos.Comment.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if comment.IsApproved == approved {
		return nil
	}

	comment.IsApproved = approved
	if err := s.repos.Comment.Update(ctx, comment); err != nil {
		return fmt.Errorf("failed to approve comment: %w", err)
	}

	s.log.Info().Str("comment_id", commentID).Bool("approved", approved).Msg("Comment approval changed")
	return nil
}

// SoftDelete marks the comment as deleted. Already-deleted and missing
// comments are a no-op.
func (s *commentService) SoftDelete(ctx context.Context, commentID string) error {
	comment, err := s.repos.Comment.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.IsDeleted {
		return nil
	}

	comment.IsDeleted = true
	if err := s.repos.Comment.Update(ctx, comment); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.log.Info().Str("comment_id", commentID).Msg("Comment soft-deleted")
	return nil
}

func (s *commentService) forPost(ctx context.Context, postID string, filter models.CommentFilter) ([]*models.Comment, error) {
	comments, err := s.repos.Comment.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	result := make([]*models.Comment, 0)
	for _, c := range comments {
		if c.PostID == postID && filter.Matches(c) {
			result = append(result, c)
		}
	}
	return result, nil
}

// unapproved returns unapproved, non-deleted comments newest first, scoped to
// a post when postID is non-empty.
func (s *commentService) unapproved(ctx context.Context, postID string) ([]*models.Comment, error) {
	comments, err := s.repos.Comment.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	result := make([]*models.Comment, 0)
	for _, c := range comments {
		if c.IsApproved || c.IsDeleted {
			continue
		}
		if postID != "" && c.PostID != postID {
			continue
		}
		result = append(result, c)
	}
	sortByDate(result, true)
	return result, nil
}

func sortByDate(comments []*models.Comment, descending bool) {
	sort.SliceStable(comments, func(i, j int) bool {
		if descending {
			return comments[i].CommentDate.After(comments[j].CommentDate)
		}
		return comments[i].CommentDate.Before(comments[j].CommentDate)
	})
}
