package repository

import (
	"context"
	"database/sql"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// versionRepo is the concrete implementation of VersionRepository
type versionRepo struct {
	db *database.DB
}

// NewVersionRepo creates a new version repository
func NewVersionRepo(db *database.DB) VersionRepository {
	return &versionRepo{db: db}
}

const versionColumns = `id, version_of_id, title, url_segment, text, author_id, is_published, published_date, last_modified_date, allow_comments, is_content_page`

// Create inserts a new version snapshot
func (r *versionRepo) Create(ctx context.Context, version *models.Version) error {
	query := `
		INSERT INTO post_versions (` + versionColumns + `)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		version.ID, version.VersionOfID, version.Title, version.UrlSegment,
		version.Text, version.AuthorID, version.IsPublished, version.PublishedDate,
		version.LastModifiedDate, version.AllowComments, version.IsContentPage,
	)
	return err
}

// Update overwrites an existing version snapshot
func (r *versionRepo) Update(ctx context.Context, version *models.Version) error {
	query := `
		UPDATE post_versions
		SET title = $2, url_segment = $3, text = $4, author_id = NULLIF($5, ''),
		    is_published = $6, published_date = $7, last_modified_date = $8,
		    allow_comments = $9, is_content_page = $10
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		version.ID, version.Title, version.UrlSegment, version.Text,
		version.AuthorID, version.IsPublished, version.PublishedDate,
		version.LastModifiedDate, version.AllowComments, version.IsContentPage,
	)
	return err
}

// Delete removes a single version
func (r *versionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM post_versions WHERE id = $1", id)
	return err
}

// GetByID retrieves a version by ID
func (r *versionRepo) GetByID(ctx context.Context, id string) (*models.Version, error) {
	query := `SELECT ` + versionColumns + ` FROM post_versions WHERE id = $1`

	version, err := scanVersion(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return version, nil
}

// GetAll retrieves every version snapshot; filtering happens in the services
func (r *versionRepo) GetAll(ctx context.Context) ([]*models.Version, error) {
	query := `SELECT ` + versionColumns + ` FROM post_versions`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []*models.Version
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, rows.Err()
}

// scanVersion reads a version row; author_id is nullable like on posts.
func scanVersion(row scanner) (*models.Version, error) {
	var version models.Version
	var authorID sql.NullString

	err := row.Scan(
		&version.ID, &version.VersionOfID, &version.Title, &version.UrlSegment,
		&version.Text, &authorID, &version.IsPublished, &version.PublishedDate,
		&version.LastModifiedDate, &version.AllowComments, &version.IsContentPage,
	)
	if err != nil {
		return nil, err
	}

	version.AuthorID = authorID.String
	return &version, nil
}

// DeleteAllForPost removes every version of a post, used when the post itself
// is deleted
func (r *versionRepo) DeleteAllForPost(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM post_versions WHERE version_of_id = $1", postID)
	return err
}
