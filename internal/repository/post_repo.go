package repository

import (
	"context"
	"database/sql"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

const postColumns = `id, title, url_segment, text, author_id, is_published, published_date, last_modified_date, allow_comments, is_content_page`

// Create inserts a new post
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.UrlSegment, post.Text, post.AuthorID,
		post.IsPublished, post.PublishedDate, post.LastModifiedDate,
		post.AllowComments, post.IsContentPage,
	)
	return err
}

// Update overwrites an existing post
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $2, url_segment = $3, text = $4, author_id = NULLIF($5, ''),
		    is_published = $6, published_date = $7, last_modified_date = $8,
		    allow_comments = $9, is_content_page = $10
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.UrlSegment, post.Text, post.AuthorID,
		post.IsPublished, post.PublishedDate, post.LastModifiedDate,
		post.AllowComments, post.IsContentPage,
	)
	return err
}

// Delete removes a post
func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// GetByID retrieves a post by ID
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetAll retrieves every post and content page; filtering happens in the services
func (r *postRepo) GetAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// scanPost reads a post row; author_id is nullable, posts need no author.
func scanPost(row scanner) (*models.Post, error) {
	var post models.Post
	var authorID sql.NullString

	err := row.Scan(
		&post.ID, &post.Title, &post.UrlSegment, &post.Text, &authorID,
		&post.IsPublished, &post.PublishedDate, &post.LastModifiedDate,
		&post.AllowComments, &post.IsContentPage,
	)
	if err != nil {
		return nil, err
	}

	post.AuthorID = authorID.String
	return &post, nil
}

// SlugExists checks if a post with the given URL segment exists
func (r *postRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE url_segment = $1)", slug).Scan(&exists)
	return exists, err
}
