package repository

import (
	"context"
	"database/sql"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

const commentColumns = `id, post_id, reply_to_comment_id, name, email, gravatar_hash, homepage, title, body, comment_date, ip_address, is_approved, is_deleted`

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.PostID, comment.ReplyToCommentID, comment.Name,
		comment.Email, comment.GravatarHash, comment.Homepage, comment.Title,
		comment.Body, comment.CommentDate, comment.IPAddress,
		comment.IsApproved, comment.IsDeleted,
	)
	return err
}

// Update overwrites an existing comment
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET reply_to_comment_id = NULLIF($2, ''), name = $3, email = $4,
		    gravatar_hash = $5, homepage = $6, title = $7, body = $8,
		    comment_date = $9, ip_address = $10, is_approved = $11, is_deleted = $12
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ReplyToCommentID, comment.Name, comment.Email,
		comment.GravatarHash, comment.Homepage, comment.Title, comment.Body,
		comment.CommentDate, comment.IPAddress, comment.IsApproved, comment.IsDeleted,
	)
	return err
}

// Delete removes a comment row outright. The moderation engine soft-deletes;
// this exists for cascade cleanup only.
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// GetAll retrieves every comment; filtering happens in the services
func (r *commentRepo) GetAll(ctx context.Context) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// DeleteAllForPost removes every comment on a post, used when the post itself
// is deleted
func (r *commentRepo) DeleteAllForPost(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE post_id = $1", postID)
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row scanner) (*models.Comment, error) {
	var comment models.Comment
	var replyTo, homepage, title, ipAddress sql.NullString

	err := row.Scan(
		&comment.ID, &comment.PostID, &replyTo, &comment.Name, &comment.Email,
		&comment.GravatarHash, &homepage, &title, &comment.Body,
		&comment.CommentDate, &ipAddress, &comment.IsApproved, &comment.IsDeleted,
	)
	if err != nil {
		return nil, err
	}

	comment.ReplyToCommentID = replyTo.String
	comment.Homepage = homepage.String
	comment.Title = title.String
	comment.IPAddress = ipAddress.String

	return &comment, nil
}
