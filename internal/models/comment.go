package models

import (
	"time"
)

// Comment represents a reader comment on a post. Comments are soft-deleted:
// the IsDeleted flag hides them from normal queries but keeps the row for
// audit and undelete.
type Comment struct {
	ID               string    `json:"id" db:"id"`
	PostID           string    `json:"post_id" db:"post_id"`
	ReplyToCommentID string    `json:"reply_to_comment_id,omitempty" db:"reply_to_comment_id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	GravatarHash     string    `json:"gravatar_hash" db:"gravatar_hash"`
	Homepage         string    `json:"homepage,omitempty" db:"homepage"`
	Title            string    `json:"title,omitempty" db:"title"`
	Body             string    `json:"body" db:"body"`
	CommentDate      time.Time `json:"comment_date" db:"comment_date"`
	IPAddress        string    `json:"ip_address,omitempty" db:"ip_address"`
	IsApproved       bool      `json:"is_approved" db:"is_approved"`
	IsDeleted        bool      `json:"is_deleted" db:"is_deleted"`
}

// CommentFilter names the filter combination applied when listing or counting
// a post's comments. Explicit fields instead of boolean defaults so callers
// state exactly which comments they mean.
type CommentFilter struct {
	ApprovedOnly   bool
	IncludeDeleted bool
}

// PublicComments is the filter used for display: approved, not deleted.
func PublicComments() CommentFilter {
	return CommentFilter{ApprovedOnly: true, IncludeDeleted: false}
}

// AllComments is the moderation view: every non-deleted comment.
func AllComments() CommentFilter {
	return CommentFilter{ApprovedOnly: false, IncludeDeleted: false}
}

// Matches reports whether a comment passes the filter. Parent scoping is the
// caller's concern.
func (f CommentFilter) Matches(c *Comment) bool {
	if f.ApprovedOnly && !c.IsApproved {
		return false
	}
	if !f.IncludeDeleted && c.IsDeleted {
		return false
	}
	return true
}
