package repository

import (
	"context"
	"database/sql"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// settingsRepo is the concrete implementation of SettingsRepository
type settingsRepo struct {
	db *database.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *database.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// Get retrieves the single settings row, or nil when none has been saved yet
func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT id, site_title, tagline, alt_tagline, menu_links, posts_per_page,
		       allow_comments, moderate_comments, google_account,
		       last_modified_date, last_modified_by
		FROM site_settings
		LIMIT 1
	`

	var s models.Settings
	var googleAccount, lastModifiedBy sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.SiteTitle, &s.Tagline, &s.AltTagline, &s.MenuLinks,
		&s.PostsPerPage, &s.AllowComments, &s.ModerateComments,
		&googleAccount, &s.LastModifiedDate, &lastModifiedBy,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.GoogleAccount = googleAccount.String
	s.LastModifiedBy = lastModifiedBy.String

	return &s, nil
}

// AddOrUpdate inserts the settings row on first save and updates it in place
// afterwards
func (r *settingsRepo) AddOrUpdate(ctx context.Context, settings *models.Settings) error {
	query := `
		INSERT INTO site_settings (id, site_title, tagline, alt_tagline, menu_links,
		    posts_per_page, allow_comments, moderate_comments, google_account,
		    last_modified_date, last_modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, NULLIF($11, ''))
		ON CONFLICT (id) DO UPDATE
		SET site_title = EXCLUDED.site_title,
		    tagline = EXCLUDED.tagline,
		    alt_tagline = EXCLUDED.alt_tagline,
		    menu_links = EXCLUDED.menu_links,
		    posts_per_page = EXCLUDED.posts_per_page,
		    allow_comments = EXCLUDED.allow_comments,
		    moderate_comments = EXCLUDED.moderate_comments,
		    google_account = EXCLUDED.google_account,
		    last_modified_date = EXCLUDED.last_modified_date,
		    last_modified_by = EXCLUDED.last_modified_by
	`
	_, err := r.db.ExecContext(ctx, query,
		settings.ID, settings.SiteTitle, settings.Tagline, settings.AltTagline,
		settings.MenuLinks, settings.PostsPerPage, settings.AllowComments,
		settings.ModerateComments, settings.GoogleAccount,
		settings.LastModifiedDate, settings.LastModifiedBy,
	)
	return err
}
